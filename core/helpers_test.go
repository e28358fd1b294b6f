// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"github.com/devblok/vkinit/core"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// recorder keeps the order of calls across fakes
type recorder struct {
	calls []string
}

func (r *recorder) record(call string) {
	r.calls = append(r.calls, call)
}

type fakeHandle struct {
	id int
}

type fakeDriver struct {
	rec *recorder

	layers    []string
	layersErr error
	createErr error

	created   []core.InstanceCreateInfo
	destroyed []core.InstanceHandle
}

func (d *fakeDriver) AvailableLayers() ([]string, error) {
	d.rec.record("AvailableLayers")
	return d.layers, d.layersErr
}

func (d *fakeDriver) CreateInstance(info core.InstanceCreateInfo) (core.InstanceHandle, error) {
	d.rec.record("CreateInstance")
	if d.createErr != nil {
		return nil, d.createErr
	}
	d.created = append(d.created, info)
	return &fakeHandle{id: len(d.created)}, nil
}

func (d *fakeDriver) DestroyInstance(handle core.InstanceHandle) {
	d.rec.record("DestroyInstance")
	d.destroyed = append(d.destroyed, handle)
}

type fakeMessengerDriver struct {
	*fakeDriver

	messengerErr error
	configs      []core.MessengerConfiguration
	destroyedFor []core.InstanceHandle
}

func (d *fakeMessengerDriver) CreateMessenger(handle core.InstanceHandle, cfg core.MessengerConfiguration) (core.MessengerHandle, error) {
	d.rec.record("CreateMessenger")
	if d.messengerErr != nil {
		return nil, d.messengerErr
	}
	d.configs = append(d.configs, cfg)
	return "messenger", nil
}

func (d *fakeMessengerDriver) DestroyMessenger(handle core.InstanceHandle, messenger core.MessengerHandle) {
	d.rec.record("DestroyMessenger")
	d.destroyedFor = append(d.destroyedFor, handle)
}

type fakeHost struct {
	rec *recorder

	initErr    error
	extensions []string
	extErr     error
	windowErr  error

	// onPoll is installed on every created window
	onPoll func(*fakeWindow)

	windowConfigs []core.WindowConfiguration
	windows       []*fakeWindow
	terminated    int
}

func (h *fakeHost) Init() error {
	h.rec.record("Init")
	return h.initErr
}

func (h *fakeHost) Terminate() {
	h.rec.record("Terminate")
	h.terminated++
}

func (h *fakeHost) RequiredExtensions() ([]string, error) {
	h.rec.record("RequiredExtensions")
	return h.extensions, h.extErr
}

func (h *fakeHost) CreateWindow(cfg core.WindowConfiguration) (core.Window, error) {
	h.rec.record("CreateWindow")
	if h.windowErr != nil {
		return nil, h.windowErr
	}
	h.windowConfigs = append(h.windowConfigs, cfg)
	w := &fakeWindow{rec: h.rec, width: cfg.Width, height: cfg.Height, onPoll: h.onPoll}
	h.windows = append(h.windows, w)
	return w, nil
}

type fakeWindow struct {
	rec *recorder

	width, height int
	shouldClose   bool
	polls         int
	destroyed     int
	onPoll        func(*fakeWindow)
}

func (w *fakeWindow) Size() (int, int) {
	return w.width, w.height
}

func (w *fakeWindow) ShouldClose() bool {
	return w.shouldClose
}

func (w *fakeWindow) SetShouldClose(v bool) {
	w.shouldClose = v
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w)
	}
}

func (w *fakeWindow) Destroy() {
	w.rec.record("DestroyWindow")
	w.destroyed++
}

// closeAfter requests a close on the nth poll
func closeAfter(n int) func(*fakeWindow) {
	return func(w *fakeWindow) {
		if w.polls >= n {
			w.SetShouldClose(true)
		}
	}
}

func newLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}
