// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// NewWindowHost creates a window host. The window is opened by InitWindow.
func NewWindowHost(host Host, cfg WindowConfiguration, t *Time, log logrus.FieldLogger) *WindowHost {
	return &WindowHost{
		host:          host,
		configuration: cfg,
		time:          t,
		log:           log,
	}
}

// WindowHost owns the window and its event loop
type WindowHost struct {
	host          Host
	configuration WindowConfiguration
	time          *Time
	log           logrus.FieldLogger

	window    Window
	destroyed bool
}

// InitWindow opens the window. It is always 800x600, never resizable
// and has no client graphics context.
func (w *WindowHost) InitWindow() error {
	if w.window != nil {
		return errors.New("core.InitWindow(): window already created")
	}

	cfg := w.configuration
	cfg.Resizable = false
	cfg.Width, cfg.Height = WindowWidth, WindowHeight

	window, err := w.host.CreateWindow(cfg)
	if err != nil {
		return errors.New("host.CreateWindow(): " + err.Error())
	}
	w.window = window

	width, height := window.Size()
	w.log.WithFields(logrus.Fields{
		"title":  cfg.Title,
		"width":  width,
		"height": height,
	}).Info("window created")
	return nil
}

// Window returns the hosted window, nil before InitWindow
func (w *WindowHost) Window() Window {
	return w.window
}

// MainLoop drains window events until a close is requested.
// The close request is the only way out.
func (w *WindowHost) MainLoop() {
	if w.window == nil {
		return
	}
	for !w.window.ShouldClose() {
		w.window.PollEvents()
		w.time.WaitEvent()
	}
	w.log.Info("event loop exited")
}

// Destroyed reports whether Cleanup released the window
func (w *WindowHost) Destroyed() bool {
	return w.destroyed
}

// DestroyWindow releases the window, keeping the subsystem alive
func (w *WindowHost) DestroyWindow() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	w.log.Debug("window destroyed")
}

// Cleanup destroys the window and terminates the windowing subsystem
func (w *WindowHost) Cleanup() {
	if w.destroyed {
		return
	}
	w.DestroyWindow()
	w.time.Stop()
	w.host.Terminate()
	w.destroyed = true
	w.log.Debug("window host terminated")
}
