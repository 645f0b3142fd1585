package turtle

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
width: 320
height: 240
mode: logo
background: "#102030"
undo_buffer: 0
delay_ms: -5
speed: 0
`)
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("size = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}
	if m, _ := cfg.ScreenMode(); m != ModeLogo {
		t.Errorf("mode = %v, want logo", m)
	}
	if bg, _ := cfg.BackgroundColor(); bg != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("background = %v", bg)
	}
	if cfg.UndoBuffer != 1 {
		t.Errorf("undo buffer = %d, want clamped to 1", cfg.UndoBuffer)
	}
	if cfg.DelayMS != 0 {
		t.Errorf("delay = %d, want clamped to 0", cfg.DelayMS)
	}
	if cfg.Speed == nil || *cfg.Speed != 0 {
		t.Errorf("speed = %v, want explicit 0", cfg.Speed)
	}
	if cfg.Title != defaultTitle {
		t.Errorf("title = %q, want default", cfg.Title)
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad mode", "mode: sideways\n"},
		{"bad color", "background: notacolor\n"},
		{"bad yaml", "width: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfigFile(writeConfig(t, tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != defaultWidth || cfg.UndoBuffer != defaultUndoBuffer {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestConfig_SavePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	cfg := DefaultConfig()
	cfg.SaveDirectory = dir

	got, err := cfg.SavePath("a.png")
	if err != nil {
		t.Fatalf("SavePath: %v", err)
	}
	if got != filepath.Join(dir, "a.png") {
		t.Errorf("SavePath = %q", got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("save directory not created: %v", err)
	}
	if got, err := DefaultConfig().SavePath("a.png"); err != nil || got != "a.png" {
		t.Errorf("SavePath without directory = %q, %v", got, err)
	}
}

func TestConfig_SavePathUnusableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain-file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.SaveDirectory = filepath.Join(file, "shots")

	if _, err := cfg.SavePath("a.png"); err == nil {
		t.Error("SavePath succeeded under a regular file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{"Dark Green", color.RGBA{0, 100, 0, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#f80", color.RGBA{255, 136, 0, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("#zzzzzz"); err == nil {
		t.Error("ParseColor accepted bad hex")
	}
}

func TestHexColor(t *testing.T) {
	if got := HexColor(color.RGBA{255, 136, 0, 255}); got != "#ff8800" {
		t.Errorf("HexColor = %q", got)
	}
}
