// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"testing"

	qt "github.com/frankban/quicktest"
	vk "github.com/vulkan-go/vulkan"

	"github.com/devblok/vkinit/core"
)

func TestReportFlagsForDefaultMessenger(t *testing.T) {
	c := qt.New(t)
	cfg := core.DefaultMessengerConfiguration(nil)

	flags := vk.DebugReportFlagBits(reportFlags(cfg.Severities, cfg.Categories))
	c.Assert(flags, qt.Equals, vk.DebugReportDebugBit|vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit|vk.DebugReportErrorBit)
}

func TestReportFlagsWithoutPerformance(t *testing.T) {
	c := qt.New(t)

	flags := vk.DebugReportFlagBits(reportFlags(core.SeverityWarning|core.SeverityInfo, core.CategoryValidation))
	c.Assert(flags, qt.Equals, vk.DebugReportWarningBit|vk.DebugReportInformationBit)
}

func TestTranslateReportFlags(t *testing.T) {
	tests := []struct {
		flags    vk.DebugReportFlagBits
		severity core.Severity
		category core.Category
	}{
		{vk.DebugReportErrorBit, core.SeverityError, core.CategoryValidation},
		{vk.DebugReportErrorBit | vk.DebugReportWarningBit, core.SeverityError, core.CategoryValidation},
		{vk.DebugReportPerformanceWarningBit, core.SeverityWarning, core.CategoryPerformance},
		{vk.DebugReportWarningBit, core.SeverityWarning, core.CategoryValidation},
		{vk.DebugReportInformationBit, core.SeverityInfo, core.CategoryGeneral},
		{vk.DebugReportDebugBit, core.SeverityVerbose, core.CategoryGeneral},
	}

	c := qt.New(t)
	for _, test := range tests {
		severity, category := translateReportFlags(vk.DebugReportFlags(test.flags))
		c.Check(severity, qt.Equals, test.severity, qt.Commentf("flags %#x", test.flags))
		c.Check(category, qt.Equals, test.category, qt.Commentf("flags %#x", test.flags))
	}
}

func TestSafeStrings(t *testing.T) {
	c := qt.New(t)
	c.Assert(safeString("VK_KHR_surface"), qt.Equals, "VK_KHR_surface\x00")
	c.Assert(safeString("VK_KHR_surface\x00"), qt.Equals, "VK_KHR_surface\x00")
	c.Assert(safeStrings([]string{"a", "b\x00"}), qt.DeepEquals, []string{"a\x00", "b\x00"})
	c.Assert(safeStrings(nil), qt.HasLen, 0)
}

func TestVersionString(t *testing.T) {
	c := qt.New(t)
	c.Assert(VersionString(core.MakeVersion(1, 3, 250)), qt.Equals, "1.3.250")
	c.Assert(VersionString(core.APIVersion10), qt.Equals, "1.0.0")
}
