// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package host provides the windowing backends for core.WindowHost.
// Every call must happen on the main, locked OS thread.
package host

import (
	"fmt"
	"unsafe"

	"github.com/devblok/vkinit/core"
	"github.com/sirupsen/logrus"
)

// Backend is a windowing system that can also hand out
// the Vulkan loader entry point it was built with
type Backend interface {
	core.Host

	// ProcAddr returns vkGetInstanceProcAddr, valid after Init
	ProcAddr() unsafe.Pointer
}

// New returns the backend with the given name
func New(name string, log logrus.FieldLogger) (Backend, error) {
	switch name {
	case "", "glfw":
		return NewGLFW(log), nil
	case "sdl":
		return NewSDL(log), nil
	}
	return nil, fmt.Errorf("unknown window backend %q", name)
}
