// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core negotiates a graphics API instance with the driver
// and hosts the window the instance will later present to.
package core

// InstanceHandle is an opaque driver instance handle.
type InstanceHandle interface{}

// MessengerHandle is an opaque driver debug messenger handle.
type MessengerHandle interface{}

// Driver describes the graphics driver boundary.
type Driver interface {
	// AvailableLayers returns the names of the layers
	// installed on the host, as reported by the driver
	AvailableLayers() ([]string, error)

	// CreateInstance creates an instance from the descriptor.
	// Any non-success status from the driver is returned as an error
	CreateInstance(InstanceCreateInfo) (InstanceHandle, error)

	// DestroyInstance destroys an instance created by CreateInstance
	DestroyInstance(InstanceHandle)
}

// MessengerDriver is implemented by drivers that can attach
// a debug messenger to a live instance.
type MessengerDriver interface {
	CreateMessenger(InstanceHandle, MessengerConfiguration) (MessengerHandle, error)
	DestroyMessenger(InstanceHandle, MessengerHandle)
}

// Host describes the windowing subsystem.
type Host interface {
	// Init sets up process wide windowing state
	Init() error

	// Terminate tears down process wide windowing state
	Terminate()

	// RequiredExtensions returns the instance extensions the
	// windowing system needs, in the order it reports them
	RequiredExtensions() ([]string, error)

	// CreateWindow opens a window
	CreateWindow(WindowConfiguration) (Window, error)
}

// Window is a platform window owned by a WindowHost.
type Window interface {
	Size() (width, height int)
	ShouldClose() bool
	SetShouldClose(bool)

	// PollEvents drains pending window events
	PollEvents()

	Destroy()
}

// Destroyable is anything that holds driver or host resources.
type Destroyable interface {
	Destroy()
}
