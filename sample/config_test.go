package sample

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xfermodes.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero cell", func(c *Config) { c.Cell = 0 }},
		{"negative columns", func(c *Config) { c.Columns = -1 }},
		{"zero checker scale", func(c *Config) { c.CheckerScale = 0 }},
		{"zero label size", func(c *Config) { c.LabelSize = 0 }},
		{"negative interval", func(c *Config) { c.IntervalY = -3 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"bad dst color", func(c *Config) { c.DstColor = "#G08000" }},
		{"short src color", func(c *Config) { c.SrcColor = "#fff" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
cell = 64
columns = 6
label_size = 18.0
output = "grid.png"
dst_color = "#80FFCC44"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := DefaultConfig()
	want.Cell = 64
	want.Columns = 6
	want.LabelSize = 18
	want.Output = "grid.png"
	want.DstColor = "#80FFCC44"
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, "cell = 64\ncolour = \"red\"\n")
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigInvalidValue(t *testing.T) {
	path := writeConfig(t, "columns = 0\n")
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadConfig() on a missing file returned nil error")
	}
	if _, err := LoadConfig(writeConfig(t, "cell = = 3")); err == nil {
		t.Error("LoadConfig() on malformed TOML returned nil error")
	}
}

func TestCanvasSize(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		n    int
		w, h int
	}{
		{0, 0, 0},
		{1, 30 + 120, 50 + 120},
		{4, 30 + 4*120 + 3*10, 50 + 120},
		{18, 30 + 4*120 + 3*10, 50 + 5*120 + 4*25},
	}

	for _, tt := range tests {
		w, h := cfg.CanvasSize(tt.n)
		if w != tt.w || h != tt.h {
			t.Errorf("CanvasSize(%d) = %dx%d, want %dx%d", tt.n, w, h, tt.w, tt.h)
		}
	}
}

func TestCellOrigin(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		i    int
		want image.Point
	}{
		{0, image.Pt(15, 25)},
		{1, image.Pt(15+130, 25)},
		{3, image.Pt(15+3*130, 25)},
		{4, image.Pt(15, 25+145)},
		{17, image.Pt(15+130, 25+4*145)},
	}

	for _, tt := range tests {
		if got := cfg.CellOrigin(tt.i); got != tt.want {
			t.Errorf("CellOrigin(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}
