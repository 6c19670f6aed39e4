package ui

import (
	"strings"
	"testing"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
		icon   string
	}{
		{"success", FormatSuccess, IconSuccess},
		{"error", FormatError, IconError},
		{"info", FormatInfo, IconInfo},
		{"warning", FormatWarning, IconWarning},
	}

	for _, theme := range []string{"auto", "dark", "light"} {
		SetTheme(theme)
		for _, tt := range tests {
			t.Run(theme+"/"+tt.name, func(t *testing.T) {
				out := tt.format("written")
				if !strings.Contains(out, tt.icon) || !strings.Contains(out, "written") {
					t.Errorf("%s(%q) = %q, missing icon or message", tt.name, "written", out)
				}
			})
		}
	}
	SetTheme("auto")
}

func TestRenderKeyValue(t *testing.T) {
	out := RenderKeyValue("Size", "3617 bytes")
	if !strings.Contains(out, "Size") || !strings.HasSuffix(out, ": 3617 bytes") {
		t.Errorf("RenderKeyValue() = %q", out)
	}
}
