// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// NewApplication wires the driver and the host to the configuration
func NewApplication(driver Driver, host Host, cfg Configuration, log logrus.FieldLogger) *Application {
	return &Application{
		configuration: cfg,
		driver:        driver,
		host:          host,
		log:           log,
	}
}

// Application runs the whole startup and shutdown sequence
type Application struct {
	configuration Configuration
	driver        Driver
	host          Host
	log           logrus.FieldLogger

	instance   *Instance
	messenger  *Messenger
	windowHost *WindowHost
}

// Run initialises the windowing subsystem, creates the instance,
// attaches the debug messenger, opens the window and blocks in the
// event loop until the window is closed. Whatever was acquired is
// released before Run returns, also on failure.
func (a *Application) Run() error {
	if err := a.host.Init(); err != nil {
		return errors.New("host.Init(): " + err.Error())
	}
	a.windowHost = NewWindowHost(a.host, a.configuration.Window, NewTime(a.configuration.Time), a.log)
	defer a.cleanup()

	instance, err := NewInstance(a.driver, a.host, a.configuration.Instance, a.configuration.Application, a.log)
	if err != nil {
		return err
	}
	a.instance = instance
	a.log.WithField("diagnostics", a.configuration.Instance.Diagnostics).Info("instance created")

	messenger, err := SetupDebugMessenger(a.driver, instance, a.configuration.Instance, a.log)
	if err != nil {
		return err
	}
	a.messenger = messenger

	if err := a.windowHost.InitWindow(); err != nil {
		return err
	}

	a.windowHost.MainLoop()
	return nil
}

// Instance returns the created instance, nil before Run
func (a *Application) Instance() *Instance {
	return a.instance
}

// Messenger returns the debug messenger, nil without diagnostics
func (a *Application) Messenger() *Messenger {
	return a.messenger
}

// WindowHost returns the window host, nil before Run
func (a *Application) WindowHost() *WindowHost {
	return a.windowHost
}

// cleanup releases in reverse order of acquisition. The instance goes
// before the subsystem since the host may own the driver loader.
func (a *Application) cleanup() {
	a.messenger.Destroy()
	a.windowHost.DestroyWindow()
	a.instance.Destroy()
	a.windowHost.Cleanup()
}
