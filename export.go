package turtle

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"turtle/geom"
	"turtle/scene"
)

var ErrNothingToExport = errors.New("turtle: nothing to export")

// Save writes the current frame. A .png path gets the image; a .txt path
// gets one line per scene record. Bare filenames land in the configured
// save directory.
func (s *Screen) Save(filename string) error {
	path, err := s.cfg.SavePath(filename)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return s.exportPNG(path)
	case ".txt":
		return s.exportTXT(path)
	default:
		return fmt.Errorf("save %s: unsupported format", filename)
	}
}

func (s *Screen) exportPNG(path string) error {
	if s.composite == nil {
		return ErrNothingToExport
	}
	if err := gg.SavePNG(path, s.composite); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func (s *Screen) exportTXT(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	width, height, bg := s.ScreenSize()
	fmt.Fprintf(w, "screen %dx%d mode=%s bg=%s\n", width, height, s.mode, HexColor(bg))
	for i, obj := range s.log.All() {
		fmt.Fprintf(w, "%d %s\n", i, describe(obj))
	}
	return w.Flush()
}

func describe(obj *scene.Object) string {
	t := obj.Transform
	switch obj.Kind {
	case scene.KindText:
		return fmt.Sprintf("text %q at (%.2f, %.2f) %s", obj.Text, t.X, t.Y, HexColor(obj.FillColor))
	case scene.KindStamp:
		return fmt.Sprintf("stamp #%d at (%.2f, %.2f) heading %.2f %s", obj.StampID, t.X, t.Y, geom.Degrees(t.Rotation), HexColor(obj.FillColor))
	}
	switch g := obj.Geometry.(type) {
	case geom.Line:
		a, b := t.Apply(g.A), t.Apply(g.B)
		return fmt.Sprintf("line (%.2f, %.2f) -> (%.2f, %.2f) width %.1f %s", a.X, a.Y, b.X, b.Y, g.Width, HexColor(obj.FillColor))
	case nil:
		return "empty"
	default:
		return fmt.Sprintf("shape %d vertices closed=%t %s", len(g.Vertices()), g.Closed(), HexColor(obj.FillColor))
	}
}
