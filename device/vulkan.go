// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/devblok/vkinit/core"
	"github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// NewVulkanDriver creates a driver that loads the Vulkan entry points on
// first use. procAddr supplies the vkGetInstanceProcAddr of the windowing
// library; when it is nil or returns nil the system loader is used.
func NewVulkanDriver(procAddr func() unsafe.Pointer, log logrus.FieldLogger) *Vulkan {
	return &Vulkan{
		procAddr:    procAddr,
		debugReport: make(map[vk.Instance]bool),
		log:         log,
	}
}

// Vulkan implements core.Driver and core.MessengerDriver
type Vulkan struct {
	procAddr func() unsafe.Pointer
	loaded   bool

	// instances created with VK_EXT_debug_report enabled
	debugReport map[vk.Instance]bool

	log logrus.FieldLogger
}

func (v *Vulkan) load() error {
	if v.loaded {
		return nil
	}

	var addr unsafe.Pointer
	if v.procAddr != nil {
		addr = v.procAddr()
	}
	if addr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(addr)
	}

	if err := vk.Init(); err != nil {
		return errors.New("vk.Init(): " + err.Error())
	}
	v.loaded = true
	v.log.Debug("vulkan loader initialised")
	return nil
}

// Layers returns the layers installed on the host
func (v *Vulkan) Layers() ([]LayerInfo, error) {
	if err := v.load(); err != nil {
		return nil, err
	}

	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, fmt.Errorf("vulkan layer enumeration failed: %s", err)
	}
	properties := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, properties)); err != nil {
		return nil, fmt.Errorf("vulkan layer enumeration failed: %s", err)
	}

	layers := make([]LayerInfo, 0, count)
	for _, layer := range properties[:count] {
		layer.Deref()
		layers = append(layers, LayerInfo{
			Name:                  vk.ToString(layer.LayerName[:]),
			Description:           vk.ToString(layer.Description[:]),
			SpecVersion:           layer.SpecVersion,
			ImplementationVersion: layer.ImplementationVersion,
		})
	}
	return layers, nil
}

// AvailableLayers implements core.Driver
func (v *Vulkan) AvailableLayers() ([]string, error) {
	layers, err := v.Layers()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(layers))
	for i, layer := range layers {
		names[i] = layer.Name
	}
	return names, nil
}

// Extensions returns the instance extensions available on the host
func (v *Vulkan) Extensions() ([]ExtensionInfo, error) {
	if err := v.load(); err != nil {
		return nil, err
	}

	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, fmt.Errorf("vulkan extension enumeration failed: %s", err)
	}
	properties := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, properties)); err != nil {
		return nil, fmt.Errorf("vulkan extension enumeration failed: %s", err)
	}

	extensions := make([]ExtensionInfo, 0, count)
	for _, ext := range properties[:count] {
		ext.Deref()
		extensions = append(extensions, ExtensionInfo{
			Name:        vk.ToString(ext.ExtensionName[:]),
			SpecVersion: ext.SpecVersion,
		})
	}
	return extensions, nil
}

// CreateInstance implements core.Driver
func (v *Vulkan) CreateInstance(info core.InstanceCreateInfo) (core.InstanceHandle, error) {
	if err := v.load(); err != nil {
		return nil, err
	}

	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(info.Application.Name),
		ApplicationVersion: info.Application.Version,
		PEngineName:        safeString(info.Application.EngineName),
		EngineVersion:      info.Application.EngineVersion,
		ApiVersion:         info.Application.APIVersion,
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     safeStrings(info.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, errors.New("vk.InitInstance(): " + err.Error())
	}

	for _, ext := range info.Extensions {
		if ext == core.DebugReportExtensionName {
			v.debugReport[instance] = true
		}
	}
	return instance, nil
}

// DestroyInstance implements core.Driver
func (v *Vulkan) DestroyInstance(handle core.InstanceHandle) {
	instance, ok := handle.(vk.Instance)
	if !ok {
		return
	}
	delete(v.debugReport, instance)
	vk.DestroyInstance(instance, nil)
}

// CreateMessenger implements core.MessengerDriver. Messages are delivered
// through VK_EXT_debug_report, so the instance must have been created
// with that extension.
func (v *Vulkan) CreateMessenger(handle core.InstanceHandle, cfg core.MessengerConfiguration) (core.MessengerHandle, error) {
	instance, ok := handle.(vk.Instance)
	if !ok {
		return nil, errors.New("device.CreateMessenger(): not a vulkan instance")
	}
	if !v.debugReport[instance] {
		return nil, core.ErrMessengerUnsupported
	}

	createInfo := vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: reportFlags(cfg.Severities, cfg.Categories),
		PfnCallback: func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType, object uint64, location uint, messageCode int32, layerPrefix string, message string, userData unsafe.Pointer) vk.Bool32 {
			severity, category := translateReportFlags(flags)
			if cfg.Dispatch(core.Message{
				Severity: severity,
				Category: category,
				Text:     layerPrefix + ": " + message,
			}) {
				return vk.True
			}
			return vk.False
		},
	}

	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(instance, &createInfo, nil, &callback)); err != nil {
		return nil, errors.New("vk.CreateDebugReportCallback(): " + err.Error())
	}
	v.log.Debug("debug report callback installed")
	return callback, nil
}

// DestroyMessenger implements core.MessengerDriver
func (v *Vulkan) DestroyMessenger(handle core.InstanceHandle, messenger core.MessengerHandle) {
	instance, ok := handle.(vk.Instance)
	if !ok {
		return
	}
	if callback, ok := messenger.(vk.DebugReportCallback); ok {
		vk.DestroyDebugReportCallback(instance, callback, nil)
	}
}
