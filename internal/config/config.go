package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/tricalendar/internal/calendar"
	"github.com/username/tricalendar/internal/latex"
	"github.com/username/tricalendar/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Layout   LayoutConfig   `mapstructure:"layout"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig describes the three months to lay out
type CalendarConfig struct {
	StartWeekday string        `mapstructure:"start_weekday"` // Weekday of the first month's day 1: 0-6 or name
	Months       []MonthConfig `mapstructure:"months"`
}

// MonthConfig represents one month column
type MonthConfig struct {
	Name string `mapstructure:"name"`
	Days int    `mapstructure:"days"`
}

// LayoutConfig represents page geometry of the generated document
type LayoutConfig struct {
	TopMargin    string `mapstructure:"top_margin"`
	BottomMargin string `mapstructure:"bottom_margin"`
	SideMargin   string `mapstructure:"side_margin"`
	EntryWidth   string `mapstructure:"entry_width"`
	Colour       string `mapstructure:"colour"`     // "R, G, B"
	Separators   string `mapstructure:"separators"` // "shared" or "boxed"
}

// OutputConfig represents the destination of the document
type OutputConfig struct {
	File string `mapstructure:"file"` // "-" writes to stdout
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// New returns a viper instance with defaults and environment binding set up
func New() *viper.Viper {
	v := viper.New()

	defaults := latex.DefaultLayout()
	v.SetDefault("calendar.start_weekday", "tuesday")
	v.SetDefault("calendar.months", []map[string]interface{}{
		{"name": "October", "days": 31},
		{"name": "November", "days": 30},
		{"name": "December", "days": 31},
	})
	v.SetDefault("layout.top_margin", defaults.TopMargin)
	v.SetDefault("layout.bottom_margin", defaults.BottomMargin)
	v.SetDefault("layout.side_margin", defaults.SideMargin)
	v.SetDefault("layout.entry_width", defaults.EntryWidth)
	v.SetDefault("layout.colour", defaults.Colour)
	v.SetDefault("layout.separators", string(defaults.SeparatorMode))
	v.SetDefault("output.file", "calendar.tex")
	v.SetDefault("log.level", "info")

	// TRICALENDAR_LAYOUT_COLOUR overrides layout.colour
	v.SetEnvPrefix("tricalendar")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load loads configuration from file into a fresh viper instance
func Load(configPath string) (*Config, error) {
	return LoadWith(New(), configPath)
}

// LoadWith reads the config file (if any) into v and decodes it.
// Flags bound to v take precedence over file values.
func LoadWith(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.tricalendar")
		v.AddConfigPath("/etc/tricalendar")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Without an explicit path a missing file just means defaults and flags
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Calendar.GetStartWeekday(); err != nil {
		return fmt.Errorf("calendar.start_weekday: %w", err)
	}
	if _, err := c.Calendar.GetMonths(); err != nil {
		return err
	}

	if _, err := latex.ParseSeparatorMode(c.Layout.Separators); err != nil {
		return fmt.Errorf("layout.separators: %w", err)
	}
	if err := validateColour(c.Layout.Colour); err != nil {
		return fmt.Errorf("layout.colour: %w", err)
	}

	if c.Output.File == "" {
		return fmt.Errorf("output.file is required")
	}

	return nil
}

// GetStartWeekday returns the configured starting weekday as a Monday=0 index
func (c *CalendarConfig) GetStartWeekday() (int, error) {
	return dateutil.ParseWeekday(c.StartWeekday)
}

// GetMonths returns the configured months, validated
func (c *CalendarConfig) GetMonths() ([calendar.MonthsPerPage]calendar.Month, error) {
	var months [calendar.MonthsPerPage]calendar.Month
	if len(c.Months) != calendar.MonthsPerPage {
		return months, fmt.Errorf("calendar.months must list exactly %d months, got %d",
			calendar.MonthsPerPage, len(c.Months))
	}

	for i, mc := range c.Months {
		m, err := calendar.NewMonth(mc.Name, mc.Days)
		if err != nil {
			return months, fmt.Errorf("calendar.months[%d]: %w", i, err)
		}
		months[i] = m
	}
	return months, nil
}

// GetLayout returns the document layout, falling back to defaults for empty values
func (c *LayoutConfig) GetLayout() latex.Layout {
	layout := latex.DefaultLayout()
	if c.TopMargin != "" {
		layout.TopMargin = c.TopMargin
	}
	if c.BottomMargin != "" {
		layout.BottomMargin = c.BottomMargin
	}
	if c.SideMargin != "" {
		layout.SideMargin = c.SideMargin
	}
	if c.EntryWidth != "" {
		layout.EntryWidth = c.EntryWidth
	}
	if c.Colour != "" {
		layout.Colour = c.Colour
	}
	if mode, err := latex.ParseSeparatorMode(c.Separators); err == nil {
		layout.SeparatorMode = mode
	}
	return layout
}

// ParseMonthFlag parses "Name:Days", e.g. "October:31"
func ParseMonthFlag(s string) (MonthConfig, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 || i == len(s)-1 {
		return MonthConfig{}, fmt.Errorf("month must be NAME:DAYS, got '%s'", s)
	}

	days, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return MonthConfig{}, fmt.Errorf("month '%s': invalid day count: %w", s, err)
	}

	return MonthConfig{Name: strings.TrimSpace(s[:i]), Days: days}, nil
}

func validateColour(colour string) error {
	parts := strings.Split(colour, ",")
	if len(parts) != 3 {
		return fmt.Errorf("must be 'R, G, B', got '%s'", colour)
	}
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return fmt.Errorf("component '%s' must be between 0 and 255", strings.TrimSpace(p))
		}
	}
	return nil
}
