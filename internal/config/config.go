// Package config loads CLI defaults from .friendly-dates.yaml and
// FRIENDLY_DATES_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/timeutil"
	"github.com/ahmetb/friendly-dates/internal/unit"
)

const (
	envPrefix  = "FRIENDLY_DATES"
	configName = ".friendly-dates"
)

// Keys understood in the config file. Environment variables use the upper
// case form with the prefix, e.g. FRIENDLY_DATES_TIME_FORMAT.
const (
	KeyLocale        = "locale"
	KeyLocaleFile    = "locale_file"
	KeyPreset        = "preset"
	KeyTimeFormat    = "time_format"
	KeyMaxUnit       = "max_unit"
	KeyIncludeTime   = "include_time"
	KeyUseWords      = "use_words"
	KeyFuzzy         = "fuzzy"
	KeyRanges        = "ranges"
	KeyAccessibility = "accessibility"
	KeyJustNow       = "just_now"
	KeyThresholds    = "thresholds"
	KeyValidate      = "validate"
	KeyColor         = "color"
)

var envKeys = []string{
	KeyLocale, KeyLocaleFile, KeyPreset, KeyTimeFormat, KeyMaxUnit,
	KeyIncludeTime, KeyUseWords, KeyFuzzy, KeyRanges, KeyAccessibility,
	KeyJustNow, KeyValidate, KeyColor,
}

// Config holds CLI configuration. Format-affecting fields stay nil or empty
// unless set, so a preset can still supply them.
type Config struct {
	Locale        string             `mapstructure:"locale"`
	LocaleFile    string             `mapstructure:"locale_file"`
	Preset        string             `mapstructure:"preset"`
	TimeFormat    string             `mapstructure:"time_format"`
	MaxUnit       string             `mapstructure:"max_unit"`
	IncludeTime   *bool              `mapstructure:"include_time"`
	UseWords      *bool              `mapstructure:"use_words"`
	Fuzzy         *bool              `mapstructure:"fuzzy"`
	Ranges        *bool              `mapstructure:"ranges"`
	Accessibility *bool              `mapstructure:"accessibility"`
	JustNow       *float64           `mapstructure:"just_now"`
	Thresholds    map[string]float64 `mapstructure:"thresholds"`
	Validate      bool               `mapstructure:"validate"`
	Color         string             `mapstructure:"color"`
}

type loadOptions struct {
	file        string
	searchPaths []string
}

// Option customizes Load.
type Option func(*loadOptions)

// WithFile reads exactly path. A missing file is an error.
func WithFile(path string) Option {
	return func(o *loadOptions) { o.file = path }
}

// WithSearchPaths replaces the directories searched for .friendly-dates.yaml.
func WithSearchPaths(dirs ...string) Option {
	return func(o *loadOptions) { o.searchPaths = dirs }
}

func defaultSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return paths
}

// Load reads the first config file found in the search paths (the working
// directory, then $HOME) and overlays the environment. Finding no file is not
// an error.
func Load(opts ...Option) (Config, error) {
	o := loadOptions{searchPaths: defaultSearchPaths()}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(KeyColor, "auto")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("bind env for %s: %w", k, err)
		}
	}

	if o.file != "" {
		v.SetConfigFile(o.file)
	} else {
		v.SetConfigName(configName)
		for _, p := range o.searchPaths {
			v.AddConfigPath(p)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		klog.V(3).InfoS("no config file found", "searchPaths", o.searchPaths)
	} else {
		klog.V(2).InfoS("loaded config", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// FormatOptions converts the configuration into engine options, loading the
// configured locale. LocaleFile wins over Locale.
func (c Config) FormatOptions() (timeutil.Options, error) {
	opts := timeutil.Options{
		Preset:             timeutil.Preset(c.Preset),
		TimeFormat:         timeutil.TimeFormat(c.TimeFormat),
		IncludeTime:        c.IncludeTime,
		UseWords:           c.UseWords,
		FuzzyMatching:      c.Fuzzy,
		RelativeDateRanges: c.Ranges,
		Accessibility:      c.Accessibility,
		JustNowThreshold:   c.JustNow,
	}

	switch {
	case c.LocaleFile != "":
		l, err := locale.LoadFile(c.LocaleFile)
		if err != nil {
			return opts, err
		}
		opts.Locale = l
	case c.Locale != "":
		l, err := locale.Load(c.Locale)
		if err != nil {
			return opts, err
		}
		opts.Locale = l
	}

	if c.MaxUnit != "" {
		u, err := unit.Parse(c.MaxUnit)
		if err != nil {
			return opts, fmt.Errorf("invalid %s: %w", KeyMaxUnit, err)
		}
		opts.MaxUnit = &u
	}
	if len(c.Thresholds) > 0 {
		opts.CustomThresholds = make(map[unit.Unit]float64, len(c.Thresholds))
		for name, secs := range c.Thresholds {
			u, err := unit.Parse(name)
			if err != nil {
				return opts, fmt.Errorf("invalid %s key: %w", KeyThresholds, err)
			}
			opts.CustomThresholds[u] = secs
		}
	}
	return opts, nil
}
