// Package locale holds the phrase tables used to render relative times and a
// registry of the locales that ship with the module.
//
// # Usage
//
//	cfg, err := locale.Load("fr-FR")
//	if err != nil {
//		return err
//	}
//	fmt.Println(cfg.Relative.Just) // "à l'instant"
//
// Config values returned by this package are shared and must be treated as
// read-only.
package locale

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/ahmetb/friendly-dates/internal/unit"
)

// Direction is the writing direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Config is the complete phrase table of a single locale.
type Config struct {
	// ID is the locale identifier, e.g. "en-US".
	ID string `yaml:"id"`
	// Name is a human readable display name.
	Name string `yaml:"name"`
	// Direction defaults to LTR when empty.
	Direction Direction `yaml:"direction,omitempty"`
	// NumberFormat is optional. Without it numbers render as plain digits.
	NumberFormat *NumberFormat `yaml:"numberFormat,omitempty"`

	Units       UnitNames `yaml:"units"`
	UnitsPlural UnitNames `yaml:"unitsPlural"`
	Relative    Phrases   `yaml:"relative"`
	Days        Names     `yaml:"days"`
	Months      Names     `yaml:"months"`
}

// NumberFormat holds the digit grouping separators of a locale.
type NumberFormat struct {
	ThousandsSeparator string `yaml:"thousandsSeparator"`
	DecimalSeparator   string `yaml:"decimalSeparator"`
}

// UnitNames holds one name per time unit.
type UnitNames struct {
	Millisecond string `yaml:"millisecond"`
	Second      string `yaml:"second"`
	Minute      string `yaml:"minute"`
	Hour        string `yaml:"hour"`
	Day         string `yaml:"day"`
	Week        string `yaml:"week"`
	Month       string `yaml:"month"`
	Quarter     string `yaml:"quarter"`
	Year        string `yaml:"year"`
	Decade      string `yaml:"decade"`
}

// Name returns the name for u, or "" for an unknown unit.
func (n UnitNames) Name(u unit.Unit) string {
	switch u {
	case unit.Millisecond:
		return n.Millisecond
	case unit.Second:
		return n.Second
	case unit.Minute:
		return n.Minute
	case unit.Hour:
		return n.Hour
	case unit.Day:
		return n.Day
	case unit.Week:
		return n.Week
	case unit.Month:
		return n.Month
	case unit.Quarter:
		return n.Quarter
	case unit.Year:
		return n.Year
	case unit.Decade:
		return n.Decade
	}
	return ""
}

// Phrases holds the fixed words and phrases a locale contributes to a
// relative time string.
type Phrases struct {
	Just      string `yaml:"just"`
	Past      string `yaml:"past"`
	Future    string `yaml:"future"`
	Yesterday string `yaml:"yesterday"`
	Tomorrow  string `yaml:"tomorrow"`
	Previous  string `yaml:"previous"`
	Next      string `yaml:"next"`
	At        string `yaml:"at"`
	About     string `yaml:"about"`
	ThisWeek  string `yaml:"thisWeek"`
	LastWeek  string `yaml:"lastWeek"`
	NextWeek  string `yaml:"nextWeek"`
	ThisMonth string `yaml:"thisMonth"`
	LastMonth string `yaml:"lastMonth"`
	NextMonth string `yaml:"nextMonth"`
	ThisYear  string `yaml:"thisYear"`
	LastYear  string `yaml:"lastYear"`
	NextYear  string `yaml:"nextYear"`
}

// Names holds abbreviated and full names of days (Sunday first) or months
// (January first).
type Names struct {
	Short []string `yaml:"short"`
	Long  []string `yaml:"long"`
}

// IsRTL reports whether the locale is written right to left.
func (c *Config) IsRTL() bool {
	return c != nil && c.Direction == RTL
}

// Parse decodes a locale from YAML. It does not validate the result; use the
// validation package for that.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode locale: %w", err)
	}
	return &cfg, nil
}

// LoadFile reads and decodes a locale YAML file.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading locale file: %w", err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
