// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"github.com/devblok/vkinit/core"
	vk "github.com/vulkan-go/vulkan"
)

// reportFlags selects the debug report flags matching
// the requested severities and categories
func reportFlags(severities core.Severity, categories core.Category) vk.DebugReportFlags {
	var flags vk.DebugReportFlagBits
	if severities&core.SeverityVerbose != 0 {
		flags |= vk.DebugReportDebugBit
	}
	if severities&core.SeverityInfo != 0 {
		flags |= vk.DebugReportInformationBit
	}
	if severities&core.SeverityWarning != 0 {
		flags |= vk.DebugReportWarningBit
		if categories&core.CategoryPerformance != 0 {
			flags |= vk.DebugReportPerformanceWarningBit
		}
	}
	if severities&core.SeverityError != 0 {
		flags |= vk.DebugReportErrorBit
	}
	return vk.DebugReportFlags(flags)
}

// translateReportFlags maps debug report flags onto a severity and category
func translateReportFlags(flags vk.DebugReportFlags) (core.Severity, core.Category) {
	bits := vk.DebugReportFlagBits(flags)
	switch {
	case bits&vk.DebugReportErrorBit != 0:
		return core.SeverityError, core.CategoryValidation
	case bits&vk.DebugReportPerformanceWarningBit != 0:
		return core.SeverityWarning, core.CategoryPerformance
	case bits&vk.DebugReportWarningBit != 0:
		return core.SeverityWarning, core.CategoryValidation
	case bits&vk.DebugReportInformationBit != 0:
		return core.SeverityInfo, core.CategoryGeneral
	}
	return core.SeverityVerbose, core.CategoryGeneral
}
