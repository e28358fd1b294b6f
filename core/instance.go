// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// MakeVersion packs a version the way the Vulkan API expects it
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// APIVersion10 targets Vulkan 1.0
var APIVersion10 = MakeVersion(1, 0, 0)

// ApplicationInfo describes the application to the driver
type ApplicationInfo struct {
	Name          string
	Version       uint32
	EngineName    string
	EngineVersion uint32
	APIVersion    uint32
}

// DefaultApplicationInfo describes this application
var DefaultApplicationInfo = ApplicationInfo{
	Name:          "Triangle Build demo",
	Version:       MakeVersion(1, 0, 0),
	EngineName:    "No Engine",
	EngineVersion: MakeVersion(1, 0, 0),
	APIVersion:    APIVersion10,
}

// InstanceCreateInfo is everything the driver needs to create an instance
type InstanceCreateInfo struct {
	Application ApplicationInfo
	Extensions  []string
	Layers      []string
}

// NewInstance negotiates layers and extensions and creates an instance.
// Missing layers fail the call before the host or the driver are asked
// for anything else. There is no retry and no fallback extension set.
func NewInstance(driver Driver, host Host, cfg InstanceConfiguration, app ApplicationInfo, log logrus.FieldLogger) (*Instance, error) {
	if cfg.Diagnostics {
		if err := CheckValidationLayers(driver, cfg.ValidationLayers); err != nil {
			return nil, err
		}
	}

	extensions, err := RequiredExtensions(host, cfg)
	if err != nil {
		return nil, err
	}

	createInfo := InstanceCreateInfo{
		Application: app,
		Extensions:  extensions,
	}
	if cfg.Diagnostics {
		createInfo.Layers = append([]string(nil), cfg.ValidationLayers...)
	}

	log.WithFields(logrus.Fields{
		"extensions": createInfo.Extensions,
		"layers":     createInfo.Layers,
	}).Debug("creating instance")

	handle, err := driver.CreateInstance(createInfo)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInstanceCreation, err)
	}

	return &Instance{
		driver:     driver,
		handle:     handle,
		createInfo: createInfo,
		log:        log,
	}, nil
}

// CheckValidationLayers requires every layer to be reported by the driver,
// matched verbatim. A single missing layer fails the whole set.
func CheckValidationLayers(driver Driver, layers []string) error {
	available, err := driver.AvailableLayers()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrLayerUnavailable, err)
	}

	if missing := MissingFrom(layers, available); len(missing) > 0 {
		return &LayerError{Missing: missing}
	}
	return nil
}

// RequiredExtensions returns the host extensions in host order,
// with the debug extension last when diagnostics are enabled
func RequiredExtensions(host Host, cfg InstanceConfiguration) ([]string, error) {
	hostExtensions, err := host.RequiredExtensions()
	if err != nil {
		return nil, err
	}

	extensions := make([]string, 0, len(hostExtensions)+1)
	extensions = append(extensions, hostExtensions...)
	if cfg.Diagnostics && cfg.DebugExtension != "" {
		extensions = append(extensions, cfg.DebugExtension)
	}
	return extensions, nil
}

var _ Destroyable = (*Instance)(nil)

// Instance owns a driver instance handle
type Instance struct {
	driver     Driver
	handle     InstanceHandle
	createInfo InstanceCreateInfo
	destroyed  bool
	log        logrus.FieldLogger
}

// Handle returns the driver handle
func (i *Instance) Handle() InstanceHandle {
	return i.handle
}

// Extensions returns the extensions the instance was created with
func (i *Instance) Extensions() []string {
	return i.createInfo.Extensions
}

// Layers returns the layers the instance was created with
func (i *Instance) Layers() []string {
	return i.createInfo.Layers
}

// Destroyed reports whether Destroy has released the handle
func (i *Instance) Destroyed() bool {
	return i.destroyed
}

// Destroy releases the handle. Only the first call reaches the driver.
func (i *Instance) Destroy() {
	if i == nil || i.destroyed {
		return
	}
	i.driver.DestroyInstance(i.handle)
	i.destroyed = true
	i.log.Debug("instance destroyed")
}
