package utils

import (
	"strings"
	"testing"

	"oneandone-compute/pkg/compute"
)

func TestValidateNodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "web-1", false},
		{"name with spaces inside", "web server 1", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"leading whitespace", " web-1", true},
		{"trailing whitespace", "web-1 ", true},
		{"too long", strings.Repeat("a", 129), true},
		{"max length", strings.Repeat("a", 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAPIVersion(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"v1", false},
		{"v2", false},
		{"v10", false},
		{"", false},
		{"1", true},
		{"version1", true},
		{"v", true},
		{"v1.2", true},
	}

	for _, tt := range tests {
		err := ValidateAPIVersion(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAPIVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestFormatState(t *testing.T) {
	tests := []struct {
		state    compute.NodeState
		expected string
	}{
		{compute.StatePending, "PENDING"},
		{compute.StateRunning, "RUNNING"},
		{compute.StateRebooting, "REBOOTING"},
		{compute.StateUnknown, "UNKNOWN"},
		{compute.NodeState("weird"), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := FormatState(tt.state); got != tt.expected {
			t.Errorf("FormatState(%s) = %s, want %s", tt.state, got, tt.expected)
		}
	}
}

func TestFormatIPs(t *testing.T) {
	if got := FormatIPs(nil); got != "-" {
		t.Errorf("FormatIPs(nil) = %s, want -", got)
	}
	if got := FormatIPs([]string{"1.2.3.4"}); got != "1.2.3.4" {
		t.Errorf("FormatIPs single = %s", got)
	}
	if got := FormatIPs([]string{"1.2.3.4", "5.6.7.8"}); got != "1.2.3.4, 5.6.7.8" {
		t.Errorf("FormatIPs multiple = %s", got)
	}
}

func TestFormatRAM(t *testing.T) {
	tests := []struct {
		ram      int
		expected string
	}{
		{512, "512MB"},
		{1024, "1GB"},
		{2048, "2GB"},
		{1536, "1536MB"},
	}

	for _, tt := range tests {
		if got := FormatRAM(tt.ram); got != tt.expected {
			t.Errorf("FormatRAM(%d) = %s, want %s", tt.ram, got, tt.expected)
		}
	}
}
