// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/devblok/vkinit/core"
	"github.com/devblok/vkinit/device"
	"github.com/fatih/color"
)

// CLI output formatters
var (
	presentColor = color.New(color.FgGreen)
	missingColor = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type layerRow struct {
	device.LayerInfo
	Requested bool `json:"requested"`
}

func writeLayers(w io.Writer, layers []device.LayerInfo, requested []string, asJSON bool) error {
	rows := make([]layerRow, len(layers))
	var names []string
	for i, layer := range layers {
		rows[i] = layerRow{LayerInfo: layer, Requested: core.Contains(requested, layer.Name)}
		names = append(names, layer.Name)
	}
	missing := core.MissingFrom(requested, names)

	if asJSON {
		return writeJSON(w, struct {
			Layers  []layerRow `json:"layers"`
			Missing []string   `json:"missing,omitempty"`
		}{rows, missing})
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerColor.Sprint("LAYER\tVERSION\tDESCRIPTION"))
	for _, row := range rows {
		name := row.Name
		if row.Requested {
			name = presentColor.Sprint(name)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, device.VersionString(row.SpecVersion), row.Description)
	}
	for _, name := range missing {
		fmt.Fprintf(tw, "%s\t-\t%s\n", missingColor.Sprint(name), "requested, not installed")
	}
	return tw.Flush()
}

type extensionRow struct {
	device.ExtensionInfo
	Required bool `json:"required"`
}

func writeExtensions(w io.Writer, extensions []device.ExtensionInfo, required []string, asJSON bool) error {
	rows := make([]extensionRow, len(extensions))
	var names []string
	for i, ext := range extensions {
		rows[i] = extensionRow{ExtensionInfo: ext, Required: core.Contains(required, ext.Name)}
		names = append(names, ext.Name)
	}
	missing := core.MissingFrom(required, names)

	if asJSON {
		return writeJSON(w, struct {
			Extensions []extensionRow `json:"extensions"`
			Missing    []string       `json:"missing,omitempty"`
		}{rows, missing})
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerColor.Sprint("EXTENSION\tREVISION\tREQUIRED"))
	for _, row := range rows {
		mark := ""
		if row.Required {
			mark = presentColor.Sprint("yes")
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", row.Name, row.SpecVersion, mark)
	}
	for _, name := range missing {
		fmt.Fprintf(tw, "%s\t-\t%s\n", name, missingColor.Sprint("missing"))
	}
	return tw.Flush()
}

func writeCheck(w io.Writer, result checkResult, asJSON bool) error {
	if asJSON {
		return writeJSON(w, struct {
			checkResult
			OK bool `json:"ok"`
		}{result, result.OK()})
	}

	for _, ext := range result.RequiredExtensions {
		if core.Contains(result.MissingExtensions, ext) {
			fmt.Fprintf(w, "%s extension %s\n", missingColor.Sprint("MISSING"), ext)
		} else {
			fmt.Fprintf(w, "%s extension %s\n", presentColor.Sprint("OK     "), ext)
		}
	}
	for _, layer := range result.RequestedLayers {
		if core.Contains(result.MissingLayers, layer) {
			fmt.Fprintf(w, "%s layer %s\n", missingColor.Sprint("MISSING"), layer)
		} else {
			fmt.Fprintf(w, "%s layer %s\n", presentColor.Sprint("OK     "), layer)
		}
	}
	if !result.Diagnostics {
		fmt.Fprintln(w, "diagnostics disabled, layers not checked")
	}
	return nil
}
