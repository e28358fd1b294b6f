// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package host

import (
	"errors"
	"unsafe"

	"github.com/devblok/vkinit/core"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// NewSDL creates an SDL2 backend
func NewSDL(log logrus.FieldLogger) *SDL {
	return &SDL{log: log.WithField("backend", "sdl")}
}

// SDL implements Backend on SDL2
type SDL struct {
	log logrus.FieldLogger
}

// Init implements core.Host
func (s *SDL) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return errors.New("sdl.VulkanLoadLibrary(): " + err.Error())
	}
	s.log.Debug("sdl initialised")
	return nil
}

// Terminate implements core.Host
func (s *SDL) Terminate() {
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}

// ProcAddr implements Backend
func (s *SDL) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// RequiredExtensions implements core.Host
func (s *SDL) RequiredExtensions() ([]string, error) {
	var window *sdl.Window
	extensions := window.VulkanGetInstanceExtensions()
	if len(extensions) == 0 {
		return nil, errors.New("sdl: no instance extensions for window surfaces")
	}
	return extensions, nil
}

// CreateWindow implements core.Host
func (s *SDL) CreateWindow(cfg core.WindowConfiguration) (core.Window, error) {
	flags := uint32(sdl.WINDOW_VULKAN | sdl.WINDOW_SHOWN)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags)
	if err != nil {
		return nil, err
	}

	id, err := window.GetID()
	if err != nil {
		window.Destroy()
		return nil, err
	}
	return &sdlWindow{window: window, id: id, log: s.log}, nil
}

type sdlWindow struct {
	window      *sdl.Window
	id          uint32
	shouldClose bool
	log         logrus.FieldLogger
}

func (w *sdlWindow) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

func (w *sdlWindow) ShouldClose() bool {
	return w.shouldClose
}

func (w *sdlWindow) SetShouldClose(v bool) {
	w.shouldClose = v
}

// PollEvents drains the SDL queue and raises the close
// flag on a quit or a close of this window
func (w *sdlWindow) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true
		case *sdl.WindowEvent:
			if et.WindowID == w.id && et.Event == sdl.WINDOWEVENT_CLOSE {
				w.shouldClose = true
			}
		}
	}
}

func (w *sdlWindow) Destroy() {
	if err := w.window.Destroy(); err != nil {
		w.log.Error("sdl.Window.Destroy(): " + err.Error())
	}
}
