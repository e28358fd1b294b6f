// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/vkinit/core"
)

func TestApplicationRun(t *testing.T) {
	c := qt.New(t)
	rec := &recorder{}
	driver := &fakeDriver{rec: rec}
	// the close request comes from outside the loop, as a user would send it
	host := &fakeHost{rec: rec, extensions: hostExtensions, onPoll: closeAfter(1)}
	log, _ := newLogger()

	app := core.NewApplication(driver, host, core.DefaultConfiguration(), log)
	c.Assert(app.Run(), qt.IsNil)

	// the instance used to leak at shutdown, it is now destroyed before the host terminates
	c.Assert(app.Instance().Destroyed(), qt.IsTrue)
	c.Assert(app.WindowHost().Destroyed(), qt.IsTrue)
	c.Assert(app.Messenger(), qt.IsNil)
	c.Assert(host.windows[0].destroyed, qt.Equals, 1)
	c.Assert(driver.created[0].Extensions, qt.DeepEquals, hostExtensions)
	c.Assert(rec.calls, qt.DeepEquals, []string{
		"Init",
		"RequiredExtensions",
		"CreateInstance",
		"CreateWindow",
		"DestroyWindow",
		"DestroyInstance",
		"Terminate",
	})
}

func TestApplicationRunWithDiagnostics(t *testing.T) {
	c := qt.New(t)
	rec := &recorder{}
	driver := &fakeMessengerDriver{fakeDriver: &fakeDriver{rec: rec, layers: []string{core.KhronosValidationLayer}}}
	host := &fakeHost{rec: rec, extensions: hostExtensions, onPoll: closeAfter(2)}
	log, _ := newLogger()

	cfg := core.DefaultConfiguration()
	cfg.Instance.Diagnostics = true

	app := core.NewApplication(driver, host, cfg, log)
	c.Assert(app.Run(), qt.IsNil)

	c.Assert(app.Messenger().Installed(), qt.IsFalse)
	c.Assert(driver.destroyedFor, qt.HasLen, 1)
	c.Assert(driver.created[0].Layers, qt.DeepEquals, []string{core.KhronosValidationLayer})
	c.Assert(rec.calls, qt.DeepEquals, []string{
		"Init",
		"AvailableLayers",
		"RequiredExtensions",
		"CreateInstance",
		"CreateMessenger",
		"CreateWindow",
		"DestroyMessenger",
		"DestroyWindow",
		"DestroyInstance",
		"Terminate",
	})
}

func TestApplicationRunMissingLayer(t *testing.T) {
	c := qt.New(t)
	rec := &recorder{}
	driver := &fakeDriver{rec: rec}
	host := &fakeHost{rec: rec, extensions: hostExtensions}
	log, _ := newLogger()

	cfg := core.DefaultConfiguration()
	cfg.Instance.Diagnostics = true

	app := core.NewApplication(driver, host, cfg, log)
	err := app.Run()
	c.Assert(err, qt.ErrorIs, core.ErrLayerUnavailable)
	c.Assert(err, qt.ErrorMatches, "validation layers requested, but not available: VK_LAYER_KHRONOS_validation")

	c.Assert(app.Instance(), qt.IsNil)
	c.Assert(host.windows, qt.HasLen, 0)
	c.Assert(app.WindowHost().Destroyed(), qt.IsTrue)
	c.Assert(rec.calls, qt.DeepEquals, []string{"Init", "AvailableLayers", "Terminate"})
}

func TestApplicationRunWindowFailure(t *testing.T) {
	c := qt.New(t)
	rec := &recorder{}
	driver := &fakeDriver{rec: rec}
	host := &fakeHost{rec: rec, extensions: hostExtensions, windowErr: errors.New("no display")}
	log, _ := newLogger()

	app := core.NewApplication(driver, host, core.DefaultConfiguration(), log)
	c.Assert(app.Run(), qt.ErrorMatches, ".*no display")
	c.Assert(app.Instance().Destroyed(), qt.IsTrue)
	c.Assert(host.terminated, qt.Equals, 1)
}

func TestApplicationRunHostInitFailure(t *testing.T) {
	c := qt.New(t)
	rec := &recorder{}
	driver := &fakeDriver{rec: rec}
	host := &fakeHost{rec: rec, initErr: errors.New("no video device")}
	log, _ := newLogger()

	app := core.NewApplication(driver, host, core.DefaultConfiguration(), log)
	c.Assert(app.Run(), qt.ErrorMatches, "host.Init\\(\\): no video device")
	c.Assert(rec.calls, qt.DeepEquals, []string{"Init"})
	c.Assert(app.WindowHost(), qt.IsNil)
}
