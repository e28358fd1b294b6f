// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package host

import (
	"errors"
	"unsafe"

	"github.com/devblok/vkinit/core"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
)

// NewGLFW creates a GLFW backend
func NewGLFW(log logrus.FieldLogger) *GLFW {
	return &GLFW{log: log.WithField("backend", "glfw")}
}

// GLFW implements Backend on GLFW 3.3
type GLFW struct {
	log logrus.FieldLogger
}

// Init implements core.Host
func (g *GLFW) Init() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return errors.New("glfw: vulkan loader not found")
	}
	g.log.Debug("glfw initialised")
	return nil
}

// Terminate implements core.Host
func (g *GLFW) Terminate() {
	glfw.Terminate()
}

// ProcAddr implements Backend
func (g *GLFW) ProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

// RequiredExtensions implements core.Host
func (g *GLFW) RequiredExtensions() ([]string, error) {
	// the query is global, no window has to exist
	var window *glfw.Window
	extensions := window.GetRequiredInstanceExtensions()
	if len(extensions) == 0 {
		return nil, errors.New("glfw: no instance extensions for window surfaces")
	}
	return extensions, nil
}

// CreateWindow implements core.Host
func (g *GLFW) CreateWindow(cfg core.WindowConfiguration) (core.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &glfwWindow{window: window}, nil
}

type glfwWindow struct {
	window *glfw.Window
}

func (w *glfwWindow) Size() (int, int) {
	return w.window.GetSize()
}

func (w *glfwWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindow) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) Destroy() {
	w.window.Destroy()
}
