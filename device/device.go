// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device implements the core driver boundary on top of Vulkan.
package device

import "fmt"

// LayerInfo describes a layer installed on the host
type LayerInfo struct {
	Name                  string
	Description           string
	SpecVersion           uint32
	ImplementationVersion uint32
}

// ExtensionInfo describes an instance extension available on the host
type ExtensionInfo struct {
	Name        string
	SpecVersion uint32
}

// VersionString formats a packed API version
func VersionString(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>22, (v>>12)&0x3ff, v&0xfff)
}
