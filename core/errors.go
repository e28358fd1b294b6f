// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"
	"strings"
)

var (
	// ErrLayerUnavailable is returned when a requested validation
	// layer is not installed on the host
	ErrLayerUnavailable = errors.New("validation layers requested, but not available")

	// ErrInstanceCreation is returned when the driver rejects instance creation
	ErrInstanceCreation = errors.New("failed to create instance")

	// ErrMessengerUnsupported is returned by drivers that cannot
	// install a messenger on the given instance
	ErrMessengerUnsupported = errors.New("debug messenger not supported by driver")
)

// LayerError lists the requested layers missing from the host.
type LayerError struct {
	Missing []string
}

func (e *LayerError) Error() string {
	return ErrLayerUnavailable.Error() + ": " + strings.Join(e.Missing, ", ")
}

// Unwrap makes errors.Is match ErrLayerUnavailable
func (e *LayerError) Unwrap() error {
	return ErrLayerUnavailable
}
