// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"os"

	"github.com/devblok/vkinit/core"
	"github.com/devblok/vkinit/device"
	"github.com/devblok/vkinit/host"
	"github.com/fatih/color"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Global flags
var (
	outputJSON bool
	noColor    bool
	backend    string
	verbose    bool
)

// errCheckFailed is returned by check after the report is written
var errCheckFailed = errors.New("host cannot create the configured instance")

// NewRootCmd creates the korucli command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "korucli",
		Short:        "Inspect the Vulkan layers and extensions of this host",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVar(&backend, "backend", "", "Window backend, glfw or sdl")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	root.AddCommand(newLayersCmd())
	root.AddCommand(newExtensionsCmd())
	root.AddCommand(newCheckCmd())
	return root
}

func newLogger() *log.Logger {
	logger := log.New()
	logger.Out = os.Stderr
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfiguration() (core.Configuration, error) {
	cfg, err := core.LoadConfiguration(packr.NewBox("../koru/resources"))
	if err != nil {
		return cfg, err
	}
	if backend != "" {
		cfg.Backend = backend
	}
	return cfg, nil
}

// withHost runs fn with an initialised window backend and a driver
// loaded through it
func withHost(cfg core.Configuration, logger log.FieldLogger, fn func(host.Backend, *device.Vulkan) error) error {
	windowHost, err := host.New(cfg.Backend, logger)
	if err != nil {
		return err
	}
	if err := windowHost.Init(); err != nil {
		return errors.New("host.Init(): " + err.Error())
	}
	defer windowHost.Terminate()

	return fn(windowHost, device.NewVulkanDriver(windowHost.ProcAddr, logger))
}

func newLayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "List the instance layers installed on this host",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}

			driver := device.NewVulkanDriver(nil, newLogger())
			layers, err := driver.Layers()
			if err != nil {
				return err
			}
			return writeLayers(cmd.OutOrStdout(), layers, cfg.Instance.ValidationLayers, outputJSON)
		},
	}
}

func newExtensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "List the instance extensions and mark those the window backend needs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}

			return withHost(cfg, newLogger(), func(windowHost host.Backend, driver *device.Vulkan) error {
				required, err := windowHost.RequiredExtensions()
				if err != nil {
					return err
				}
				extensions, err := driver.Extensions()
				if err != nil {
					return err
				}
				return writeExtensions(cmd.OutOrStdout(), extensions, required, outputJSON)
			})
		},
	}
}

func newCheckCmd() *cobra.Command {
	var diagnostics bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the configured instance can be created, without opening a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("vkdbg") {
				cfg.Instance.Diagnostics = diagnostics
			}

			logger := newLogger()
			return withHost(cfg, logger, func(windowHost host.Backend, driver *device.Vulkan) error {
				result, err := runCheck(driver, windowHost, cfg.Instance)
				if err != nil {
					return err
				}
				if err := writeCheck(cmd.OutOrStdout(), result, outputJSON); err != nil {
					return err
				}
				if !result.OK() {
					return errCheckFailed
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&diagnostics, "vkdbg", false, "Check with Vulkan validation layers")
	return cmd
}
