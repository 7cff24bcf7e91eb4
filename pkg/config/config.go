package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/john-critchley/htmlplotlib/pkg/palette"
)

const (
	// ConstantConfigFilename is the default dotenv file with render
	// defaults, looked up in the working directory.
	ConstantConfigFilename = ".htmlplotrc"

	// Render defaults
	DefaultPalette     = "rocket"
	DefaultFmt         = ".2f"
	DefaultLegendFmt   = ".1f"
	DefaultRampSize    = 256
	DefaultLegendTicks = 6
	DefaultFontSize    = 12

	// logger
	DefaultLogLevel = "info"
)

// Config carries the CLI's render defaults. Every field can be overridden
// per invocation with a flag; the config only changes what the flags
// default to.
type Config struct {
	Palette     string
	Fmt         string
	LegendFmt   string
	RampSize    int
	LegendTicks int
	FontSize    int
	LogLevel    string
}

func (c *Config) Validate() error {
	if _, err := palette.Resolve(c.Palette); err != nil {
		return fmt.Errorf("HTMLPLOT_PALETTE: %w", err)
	}
	if c.RampSize < 1 {
		return fmt.Errorf("HTMLPLOT_RAMP_SIZE must be at least 1, got %d", c.RampSize)
	}
	if c.LegendTicks < 2 {
		return fmt.Errorf("HTMLPLOT_LEGEND_TICKS must be at least 2, got %d", c.LegendTicks)
	}
	if c.FontSize < 1 {
		return fmt.Errorf("HTMLPLOT_FONT_SIZE must be at least 1, got %d", c.FontSize)
	}
	return nil
}

// Load reads the dotenv file (missing files are fine) and resolves each
// setting from the environment, falling back to the built-in defaults.
func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		Palette:     getEnv("HTMLPLOT_PALETTE", DefaultPalette),
		Fmt:         getEnv("HTMLPLOT_FMT", DefaultFmt),
		LegendFmt:   getEnv("HTMLPLOT_LEGEND_FMT", DefaultLegendFmt),
		RampSize:    getEnvInt("HTMLPLOT_RAMP_SIZE", DefaultRampSize),
		LegendTicks: getEnvInt("HTMLPLOT_LEGEND_TICKS", DefaultLegendTicks),
		FontSize:    getEnvInt("HTMLPLOT_FONT_SIZE", DefaultFontSize),
		LogLevel:    getEnv("HTMLPLOT_LOG_LEVEL", DefaultLogLevel),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
