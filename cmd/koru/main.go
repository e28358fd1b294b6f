// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/devblok/vkinit/core"
	"github.com/devblok/vkinit/device"
	"github.com/devblok/vkinit/host"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

var (
	debug   = flag.Bool("vkdbg", false, "Load Vulkan validation layers")
	backend = flag.String("backend", "", "Window backend, glfw or sdl")
	verbose = flag.Bool("v", false, "Verbose logging")
)

// StaticResources holds the bundled configuration defaults
var StaticResources = packr.NewBox("./resources")

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	logger := log.New()
	logger.Out = os.Stderr
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := core.LoadConfiguration(StaticResources)
	if err != nil {
		logger.Error(err)
		return 1
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vkdbg":
			cfg.Instance.Diagnostics = *debug
		case "backend":
			cfg.Backend = *backend
		}
	})

	windowHost, err := host.New(cfg.Backend, logger)
	if err != nil {
		logger.Error(err)
		return 1
	}
	driver := device.NewVulkanDriver(windowHost.ProcAddr, logger)

	app := core.NewApplication(driver, windowHost, cfg, logger)
	if err := app.Run(); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}
