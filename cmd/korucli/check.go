// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"

	"github.com/devblok/vkinit/core"
	"github.com/devblok/vkinit/device"
)

type extensionDriver interface {
	core.Driver
	Extensions() ([]device.ExtensionInfo, error)
}

type checkResult struct {
	Diagnostics        bool     `json:"diagnostics"`
	RequiredExtensions []string `json:"requiredExtensions"`
	MissingExtensions  []string `json:"missingExtensions,omitempty"`
	RequestedLayers    []string `json:"requestedLayers,omitempty"`
	MissingLayers      []string `json:"missingLayers,omitempty"`
}

func (r checkResult) OK() bool {
	return len(r.MissingExtensions) == 0 && len(r.MissingLayers) == 0
}

// runCheck performs the negotiation of core.NewInstance without
// creating the instance
func runCheck(driver extensionDriver, windowHost core.Host, cfg core.InstanceConfiguration) (checkResult, error) {
	result := checkResult{Diagnostics: cfg.Diagnostics}

	if cfg.Diagnostics {
		result.RequestedLayers = cfg.ValidationLayers
		var layerErr *core.LayerError
		if err := core.CheckValidationLayers(driver, cfg.ValidationLayers); errors.As(err, &layerErr) {
			result.MissingLayers = layerErr.Missing
		} else if err != nil {
			return result, err
		}
	}

	required, err := core.RequiredExtensions(windowHost, cfg)
	if err != nil {
		return result, err
	}
	result.RequiredExtensions = required

	available, err := driver.Extensions()
	if err != nil {
		return result, err
	}
	names := make([]string, len(available))
	for i, ext := range available {
		names[i] = ext.Name
	}
	result.MissingExtensions = core.MissingFrom(required, names)
	return result, nil
}
