// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/gobuffalo/packd"
	"github.com/joho/godotenv"
)

// Fixed window extent
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Well known names
const (
	DebugUtilsExtensionName  = "VK_EXT_debug_utils"
	DebugReportExtensionName = "VK_EXT_debug_report"
	KhronosValidationLayer   = "VK_LAYER_KHRONOS_validation"
)

// ConfigurationResource is the name of the bundled defaults file
const ConfigurationResource = "bootstrap.env"

// Configuration defines the startup configuration. It is built
// once when the process starts and only read afterwards.
type Configuration struct {
	Application ApplicationInfo
	Instance    InstanceConfiguration
	Window      WindowConfiguration
	Time        TimeConfiguration

	// Backend selects the windowing backend, "glfw" or "sdl"
	Backend string
}

// InstanceConfiguration is used to configure instance creation
type InstanceConfiguration struct {
	// Diagnostics enables validation layers and the debug messenger
	Diagnostics      bool
	ValidationLayers []string

	// DebugExtension is appended to the extension list when
	// Diagnostics is set
	DebugExtension string
}

// WindowConfiguration is used to configure the window host
type WindowConfiguration struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// EventPollDelay is the pause between event polls in milliseconds.
	// Zero polls without pausing
	EventPollDelay int
}

// DefaultConfiguration returns the configuration used when
// nothing else is provided
func DefaultConfiguration() Configuration {
	return Configuration{
		Application: DefaultApplicationInfo,
		Instance: InstanceConfiguration{
			ValidationLayers: []string{KhronosValidationLayer},
			DebugExtension:   DebugUtilsExtensionName,
		},
		Window: WindowConfiguration{
			Title:  "vulkan",
			Width:  WindowWidth,
			Height: WindowHeight,
		},
		Backend: "glfw",
	}
}

// LoadConfiguration builds the configuration from the bundled
// defaults in box, overlaid with the process environment.
func LoadConfiguration(box packd.Finder) (Configuration, error) {
	cfg := DefaultConfiguration()

	defaults := map[string]string{}
	if box != nil {
		data, err := box.Find(ConfigurationResource)
		if err != nil {
			return cfg, errors.New("core.LoadConfiguration(): " + err.Error())
		}
		if defaults, err = godotenv.Parse(bytes.NewReader(data)); err != nil {
			return cfg, errors.New("godotenv.Parse(): " + err.Error())
		}
	}

	get := func(key, fallback string) string {
		if v, ok := defaults[key]; ok {
			fallback = v
		}
		return envy.Get(key, fallback)
	}

	cfg.Application.Name = get("KORU_APP_NAME", cfg.Application.Name)
	cfg.Window.Title = get("KORU_WINDOW_TITLE", cfg.Window.Title)
	cfg.Backend = get("KORU_WINDOW_BACKEND", cfg.Backend)
	cfg.Instance.DebugExtension = get("KORU_DEBUG_EXTENSION", cfg.Instance.DebugExtension)

	if v := get("KORU_DIAGNOSTICS", strconv.FormatBool(cfg.Instance.Diagnostics)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.New("KORU_DIAGNOSTICS: " + err.Error())
		}
		cfg.Instance.Diagnostics = b
	}

	if v := get("KORU_VALIDATION_LAYERS", ""); v != "" {
		cfg.Instance.ValidationLayers = splitList(v)
	}

	if v := get("KORU_EVENT_POLL_DELAY", ""); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.New("KORU_EVENT_POLL_DELAY: " + err.Error())
		}
		if d < 0 {
			return cfg, errors.New("KORU_EVENT_POLL_DELAY: must not be negative")
		}
		cfg.Time.EventPollDelay = d
	}

	return cfg, nil
}

func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
