// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Contains reports whether s is one of list
func Contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// MissingFrom returns the items of want that are absent from have,
// keeping the order of want
func MissingFrom(want, have []string) []string {
	var missing []string
	for _, w := range want {
		if !Contains(have, w) {
			missing = append(missing, w)
		}
	}
	return missing
}
