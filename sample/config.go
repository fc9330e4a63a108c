package sample

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/xfermodes"
)

// ErrInvalidConfig is returned when a Config cannot produce a grid.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes the layout of the sample grid.
type Config struct {
	// Cell is the width and height of one sample cell in pixels.
	Cell int `toml:"cell"`
	// Columns is the number of cells per row.
	Columns int `toml:"columns"`

	// Outer margin around the grid.
	TranslateX int `toml:"translate_x"`
	TranslateY int `toml:"translate_y"`

	// Gaps between cells. IntervalY also leaves room for the labels.
	IntervalX int `toml:"interval_x"`
	IntervalY int `toml:"interval_y"`

	// CheckerScale is the side of one checkerboard square in pixels.
	CheckerScale int `toml:"checker_scale"`
	// LabelSize is the label font size in points at 72 DPI.
	LabelSize float64 `toml:"label_size"`

	// Shape colors as "#RRGGBB" or "#AARRGGBB".
	DstColor string `toml:"dst_color"`
	SrcColor string `toml:"src_color"`

	// Workers bounds concurrent cell rendering. Zero means no limit.
	Workers int `toml:"workers"`

	// Output is the PNG path used by the command line tool.
	Output string `toml:"output"`
}

// DefaultConfig returns the layout of the original sample screen.
func DefaultConfig() Config {
	return Config{
		Cell:         120,
		Columns:      4,
		TranslateX:   15,
		TranslateY:   25,
		IntervalX:    10,
		IntervalY:    25,
		CheckerScale: 6,
		LabelSize:    14,
		DstColor:     "#FFFFCC44",
		SrcColor:     "#FF66AAFF",
		Output:       "xfermodes.png",
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys missing from the file
// keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("sample: load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("sample: %w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the layout is usable.
func (c Config) Validate() error {
	switch {
	case c.Cell <= 0:
		return fmt.Errorf("sample: %w: cell size %d", ErrInvalidConfig, c.Cell)
	case c.Columns <= 0:
		return fmt.Errorf("sample: %w: columns %d", ErrInvalidConfig, c.Columns)
	case c.CheckerScale <= 0:
		return fmt.Errorf("sample: %w: checker scale %d", ErrInvalidConfig, c.CheckerScale)
	case c.LabelSize <= 0:
		return fmt.Errorf("sample: %w: label size %g", ErrInvalidConfig, c.LabelSize)
	case c.TranslateX < 0 || c.TranslateY < 0 || c.IntervalX < 0 || c.IntervalY < 0:
		return fmt.Errorf("sample: %w: negative spacing", ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("sample: %w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if _, _, err := c.colors(); err != nil {
		return err
	}
	return nil
}

// colors parses the destination and source shape colors.
func (c Config) colors() (dst, src xfermodes.RGBA, err error) {
	if dst, err = xfermodes.ParseColor(c.DstColor); err != nil {
		return dst, src, fmt.Errorf("sample: %w: dst_color: %w", ErrInvalidConfig, err)
	}
	if src, err = xfermodes.ParseColor(c.SrcColor); err != nil {
		return dst, src, fmt.Errorf("sample: %w: src_color: %w", ErrInvalidConfig, err)
	}
	return dst, src, nil
}

// CanvasSize returns the size of a grid holding n cells.
func (c Config) CanvasSize(n int) (w, h int) {
	if n <= 0 {
		return 0, 0
	}
	cols := min(n, c.Columns)
	rows := (n + c.Columns - 1) / c.Columns
	w = 2*c.TranslateX + cols*c.Cell + (cols-1)*c.IntervalX
	h = 2*c.TranslateY + rows*c.Cell + (rows-1)*c.IntervalY
	return w, h
}

// CellOrigin returns the top-left corner of cell i. Cells fill rows left to
// right and wrap after Columns.
func (c Config) CellOrigin(i int) image.Point {
	col, row := i%c.Columns, i/c.Columns
	return image.Pt(
		c.TranslateX+col*(c.Cell+c.IntervalX),
		c.TranslateY+row*(c.Cell+c.IntervalY),
	)
}
