package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidatePlayOptions(t *testing.T) {
	tests := []struct {
		name       string
		config     string
		difficulty string
		wantErr    string
	}{
		{"defaults", "", "", ""},
		{"valid config and preset", writeConfig(t, "ok.yaml", "player:\n  speed: 900\n"), "hard", ""},
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), "", "failed to read config"},
		{"unparsable file", writeConfig(t, "broken.yaml", "player: [\n"), "", "failed to parse config"},
		{"invalid value", writeConfig(t, "bad.yaml", "player:\n  size: -1\n"), "", "player.size"},
		{"unknown difficulty", "", "insane", "unknown difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePlayOptions(tt.config, tt.difficulty)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validatePlayOptions() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validatePlayOptions() = %v, expected error containing %q", err, tt.wantErr)
			}
		})
	}
}
