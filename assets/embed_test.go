package assets

import (
	"strings"
	"testing"
)

func TestHelp(t *testing.T) {
	tests := []struct {
		lang  string
		first string
	}{
		{lang: "en", first: "Break the hidden code"},
		{lang: "hu", first: "Fejtsd meg"},
		{lang: "hu-HU", first: "Fejtsd meg"},
		{lang: "HU", first: "Fejtsd meg"},
		{lang: "de", first: "Break the hidden code"},
		{lang: "", first: "Break the hidden code"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			lines, err := Help(tt.lang)
			if err != nil {
				t.Fatalf("Help(%q) failed: %v", tt.lang, err)
			}
			if len(lines) == 0 || !strings.HasPrefix(lines[0], tt.first) {
				t.Fatalf("Help(%q) starts with %q, want prefix %q", tt.lang, lines, tt.first)
			}
			for _, l := range lines {
				if strings.HasPrefix(strings.TrimSpace(l), "#") {
					t.Fatalf("comment line leaked: %q", l)
				}
			}
		})
	}
}
