// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Severity of a diagnostic message, valued as in VK_EXT_debug_utils
type Severity uint32

// Message severities
const (
	SeverityVerbose Severity = 0x00000001
	SeverityInfo    Severity = 0x00000010
	SeverityWarning Severity = 0x00000100
	SeverityError   Severity = 0x00001000
)

func (s Severity) String() string {
	switch {
	case s&SeverityError != 0:
		return "error"
	case s&SeverityWarning != 0:
		return "warning"
	case s&SeverityInfo != 0:
		return "info"
	case s&SeverityVerbose != 0:
		return "verbose"
	}
	return "unknown"
}

// Category of a diagnostic message
type Category uint32

// Message categories
const (
	CategoryGeneral     Category = 0x00000001
	CategoryValidation  Category = 0x00000002
	CategoryPerformance Category = 0x00000004
)

func (c Category) String() string {
	switch {
	case c&CategoryValidation != 0:
		return "validation"
	case c&CategoryPerformance != 0:
		return "performance"
	case c&CategoryGeneral != 0:
		return "general"
	}
	return "unknown"
}

// Message is a diagnostic message produced by the driver or a layer
type Message struct {
	Severity Severity
	Category Category
	Text     string
}

// MessengerContext is handed to the callback with every message
type MessengerContext struct {
	Log logrus.FieldLogger
}

// Callback receives diagnostic messages. Returning true asks
// the driver to abort the call that triggered the message.
type Callback func(Message, MessengerContext) bool

// MessengerConfiguration selects the messages a messenger receives
type MessengerConfiguration struct {
	Severities Severity
	Categories Category
	Callback   Callback
	Context    MessengerContext
}

// DefaultMessengerConfiguration selects verbose, warning and error
// messages of every category and routes them to DebugCallback
func DefaultMessengerConfiguration(log logrus.FieldLogger) MessengerConfiguration {
	return MessengerConfiguration{
		Severities: SeverityVerbose | SeverityWarning | SeverityError,
		Categories: CategoryGeneral | CategoryValidation | CategoryPerformance,
		Callback:   DebugCallback,
		Context:    MessengerContext{Log: log},
	}
}

// Selects reports whether the configuration subscribes to msg
func (c MessengerConfiguration) Selects(msg Message) bool {
	return c.Severities&msg.Severity != 0 && c.Categories&msg.Category != 0
}

// Dispatch hands msg to the callback if it is selected and
// returns the callback's abort signal
func (c MessengerConfiguration) Dispatch(msg Message) bool {
	if c.Callback == nil || !c.Selects(msg) {
		return false
	}
	return c.Callback(msg, c.Context)
}

// DebugCallback writes every message to the context logger at a level
// matching its severity and never aborts the triggering call
func DebugCallback(msg Message, ctx MessengerContext) bool {
	if ctx.Log == nil {
		return false
	}

	entry := ctx.Log.WithFields(logrus.Fields{
		"severity": msg.Severity.String(),
		"category": msg.Category.String(),
	})
	switch {
	case msg.Severity >= SeverityError:
		entry.Error("validation layer: " + msg.Text)
	case msg.Severity >= SeverityWarning:
		entry.Warn("validation layer: " + msg.Text)
	case msg.Severity >= SeverityInfo:
		entry.Info("validation layer: " + msg.Text)
	default:
		entry.Debug("validation layer: " + msg.Text)
	}
	return false
}

// SetupDebugMessenger attaches a messenger to instance when diagnostics
// are enabled. Drivers that cannot install one yield an inert messenger
// holding the prepared configuration.
func SetupDebugMessenger(driver Driver, instance *Instance, cfg InstanceConfiguration, log logrus.FieldLogger) (*Messenger, error) {
	if !cfg.Diagnostics {
		return nil, nil
	}

	m := &Messenger{
		configuration: DefaultMessengerConfiguration(log),
		instance:      instance,
		log:           log,
	}

	md, ok := driver.(MessengerDriver)
	if !ok {
		log.Warn("driver cannot install a debug messenger, diagnostics will not be reported")
		return m, nil
	}

	handle, err := md.CreateMessenger(instance.Handle(), m.configuration)
	if errors.Is(err, ErrMessengerUnsupported) {
		log.WithField("extension", cfg.DebugExtension).Warn("debug messenger not installed: " + err.Error())
		return m, nil
	} else if err != nil {
		return nil, err
	}

	m.driver = md
	m.handle = handle
	return m, nil
}

var _ Destroyable = (*Messenger)(nil)

// Messenger is a debug messenger, installed or inert
type Messenger struct {
	configuration MessengerConfiguration
	instance      *Instance
	driver        MessengerDriver
	handle        MessengerHandle
	log           logrus.FieldLogger
}

// Configuration returns the prepared messenger configuration
func (m *Messenger) Configuration() MessengerConfiguration {
	return m.configuration
}

// Installed reports whether a live messenger is attached to the instance
func (m *Messenger) Installed() bool {
	return m != nil && m.driver != nil
}

// Destroy detaches the messenger. It must run before the instance is destroyed.
func (m *Messenger) Destroy() {
	if !m.Installed() {
		return
	}
	m.driver.DestroyMessenger(m.instance.Handle(), m.handle)
	m.driver = nil
	m.handle = nil
	m.log.Debug("debug messenger destroyed")
}
