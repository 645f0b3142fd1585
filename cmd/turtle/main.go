// Command turtle is an interactive turtle canvas in the terminal. Keys
// steer the turtle and clicks send it somewhere; with -display headless it
// draws a demo figure and saves it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"turtle"
	"turtle/display/headless"
	"turtle/display/term"
	"turtle/display/tui"
)

func main() {
	displayName := flag.String("display", "tui", "where to draw: tui, term or headless")
	configPath := flag.String("config", "", "config file (default ~/"+turtle.ConfigFile+")")
	out := flag.String("out", "turtle.png", "file the headless display saves to")
	logPath := flag.String("log", "", "write logs to this file")
	demo := flag.Bool("demo", false, "draw the demo figure before handing over the keys")
	flag.Parse()

	logger, closeLog, err := openLog(*logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	slog.SetDefault(logger)
	turtle.SetLogger(logger)

	if err := run(*displayName, *configPath, *out, *demo); err != nil {
		closeLog()
		log.Fatal(err)
	}
}

func run(displayName, configPath, out string, demo bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	var d turtle.Display
	switch displayName {
	case "tui":
		d = tui.New(cfg.Width, cfg.Height)
	case "term":
		td, err := term.New(cfg.Width, cfg.Height)
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		d = td
	case "headless":
		d = headless.New(cfg.Width, cfg.Height)
	default:
		return fmt.Errorf("unknown display %q", displayName)
	}

	s, err := turtle.NewScreen(d, turtle.WithConfig(cfg))
	if err != nil {
		_ = d.Close()
		return err
	}
	defer s.Bye()

	t := turtle.NewTurtle(s)
	if displayName == "headless" {
		drawDemo(t)
		return s.Save(out)
	}
	if demo {
		drawDemo(t)
	}
	bindControls(s, t, readClipboardText)
	s.Mainloop()
	return nil
}

func loadConfig(path string) (*turtle.Config, error) {
	if path == "" {
		return turtle.LoadConfig()
	}
	return turtle.LoadConfigFile(path)
}

// openLog discards logs unless a file is given; the terminal belongs to the canvas.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

// drawDemo draws a filled star with a stamp at each point and a caption.
func drawDemo(t *turtle.Turtle) {
	s := t.Screen()
	delay := s.Delay()
	s.Tracer(4, 0)
	t.SetColor(turtle.MustColor("navy"), turtle.MustColor("#ffcc00"))
	t.SetWidth(2)
	t.PenUp()
	t.GoTo(-120, 40)
	t.PenDown()
	t.BeginFill()
	for range 5 {
		t.Forward(240)
		t.Stamp()
		t.Right(144)
	}
	t.EndFill()
	t.PenUp()
	t.GoTo(-120, -160)
	t.Write("turtle")
	t.Home()
	s.Tracer(1, delay)
}
