package utils

import (
	"fmt"
	"regexp"
	"strings"

	"oneandone-compute/pkg/compute"
)

// maxNodeNameLength is the longest server name the CloudPanel API accepts
const maxNodeNameLength = 128

var apiVersionFormat = regexp.MustCompile(`^v[0-9]+$`)

// ValidateNodeName checks if the server name is acceptable
func ValidateNodeName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("node name must not be empty")
	}
	if trimmed != name {
		return fmt.Errorf("node name must not have leading or trailing whitespace")
	}
	if len(name) > maxNodeNameLength {
		return fmt.Errorf("node name must be at most %d characters, got %d", maxNodeNameLength, len(name))
	}
	return nil
}

// ValidateAPIVersion checks if the version string is well-formed (e.g. "v1").
// Whether a driver variant exists for the version is decided at construction.
func ValidateAPIVersion(version string) error {
	if version == "" {
		return nil // empty selects the default
	}
	if !apiVersionFormat.MatchString(version) {
		return fmt.Errorf("invalid API version format: %s", version)
	}
	return nil
}

// FormatState renders a node state for display
func FormatState(state compute.NodeState) string {
	switch state {
	case compute.StatePending:
		return "PENDING"
	case compute.StateRunning:
		return "RUNNING"
	case compute.StateRebooting:
		return "REBOOTING"
	default:
		return "UNKNOWN"
	}
}

// FormatIPs renders an address list for display
func FormatIPs(ips []string) string {
	if len(ips) == 0 {
		return "-"
	}
	return strings.Join(ips, ", ")
}

// FormatRAM renders a size's RAM (MB) for display
func FormatRAM(ram int) string {
	if ram >= 1024 && ram%1024 == 0 {
		return fmt.Sprintf("%dGB", ram/1024)
	}
	return fmt.Sprintf("%dMB", ram)
}
