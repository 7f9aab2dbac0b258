// Package config loads the lineflow CLI configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/lineflow/layout"
	"github.com/iw2rmb/lineflow/measure"
)

// Measurement engines selectable by Config.Engine.
const (
	EngineFixed  = "fixed"
	EngineCells  = "cells"
	EngineFace   = "face"
	EngineBitmap = "bitmap"
	EngineVector = "vector"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Engine   string  `toml:"engine"`
	Advance  float64 `toml:"advance"`
	FontSize float64 `toml:"font_size"`
	Bold     bool    `toml:"bold"`
	Italic   bool    `toml:"italic"`

	RowHeight int     `toml:"row_height"`
	TabWidth  int     `toml:"tab_width"`
	DPI       float64 `toml:"dpi"`
}

// Default returns the configuration used when no file is given: terminal
// cells, one row per line.
func Default() Config {
	return Config{
		Engine:    EngineCells,
		Advance:   1,
		RowHeight: 1,
		TabWidth:  4,
		DPI:       72,
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Engine {
	case EngineFixed, EngineCells, EngineFace, EngineBitmap, EngineVector:
	default:
		return fmt.Errorf("%w: engine %q (want fixed, cells, face, bitmap or vector)", ErrInvalid, c.Engine)
	}
	if c.Engine == EngineFixed && c.Advance <= 0 {
		return fmt.Errorf("%w: advance must be positive, got %v", ErrInvalid, c.Advance)
	}
	if c.FontSize < 0 {
		return fmt.Errorf("%w: font_size must not be negative, got %v", ErrInvalid, c.FontSize)
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("%w: row_height must be positive, got %d", ErrInvalid, c.RowHeight)
	}
	if c.TabWidth <= 0 {
		return fmt.Errorf("%w: tab_width must be positive, got %d", ErrInvalid, c.TabWidth)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("%w: dpi must be positive, got %v", ErrInvalid, c.DPI)
	}
	return nil
}

func (c Config) Style() measure.Style {
	return measure.Style{Size: c.FontSize, Bold: c.Bold, Italic: c.Italic}
}

// Measurer builds the configured engine. Font-backed engines sit behind a
// measure.Cache.
func (c Config) Measurer() (measure.Measurer, error) {
	switch c.Engine {
	case EngineFixed:
		return measure.Fixed{Advance: c.Advance}, nil
	case EngineCells:
		return measure.Cells{}, nil
	case EngineBitmap:
		return measure.Bitmap{}, nil
	case EngineFace:
		f, err := measure.NewFace(c.DPI)
		if err != nil {
			return nil, fmt.Errorf("load fonts: %w", err)
		}
		return measure.NewCache(f), nil
	case EngineVector:
		v, err := measure.NewVector()
		if err != nil {
			return nil, fmt.Errorf("load fonts: %w", err)
		}
		return measure.NewCache(v), nil
	default:
		return nil, fmt.Errorf("%w: engine %q", ErrInvalid, c.Engine)
	}
}

// Layout returns the layout configuration for c.
func (c Config) Layout(logger *log.Logger) layout.Config {
	return layout.Config{
		RowHeight: c.RowHeight,
		TabWidth:  c.TabWidth,
		Style:     c.Style(),
		Logger:    logger,
	}
}
