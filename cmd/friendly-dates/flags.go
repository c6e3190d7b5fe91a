// Copyright 2025 Ahmet Alp Balkan
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"

	"github.com/ahmetb/friendly-dates/internal/config"
	"github.com/ahmetb/friendly-dates/internal/output"
	"github.com/ahmetb/friendly-dates/internal/timeutil"
	"github.com/ahmetb/friendly-dates/internal/validation"
)

// formatFlags are the persistent flags shared by the formatting commands.
// Only flags the user changed override the loaded configuration.
type formatFlags struct {
	configFile    string
	now           string
	locale        string
	localeFile    string
	preset        string
	timeFormat    string
	maxUnit       string
	includeTime   bool
	words         bool
	fuzzy         bool
	ranges        bool
	accessibility bool
	justNow       float64
	thresholds    map[string]string
	validate      bool
	color         string
}

func (f *formatFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configFile, "config", "", "config file (default .friendly-dates.yaml in the working directory or $HOME)")
	fs.StringVar(&f.now, "now", "", "reference moment (default current time)")
	fs.StringVar(&f.locale, "locale", "", `built-in locale id, see "friendly-dates locales"`)
	fs.StringVar(&f.localeFile, "locale-file", "", "custom locale YAML file, wins over --locale")
	fs.StringVar(&f.preset, "preset", "", "option preset (social|formal|compact|accessibility)")
	fs.StringVar(&f.timeFormat, "time-format", "", "clock used for times of day (12h|24h)")
	fs.StringVar(&f.maxUnit, "max-unit", "", "coarsest unit to describe a distance in, e.g. week")
	fs.BoolVar(&f.includeTime, "include-time", true, "append the time of day to day level phrases")
	fs.BoolVar(&f.words, "words", true, "spell out small counts")
	fs.BoolVar(&f.fuzzy, "fuzzy", false, `round counts and prefix them with "about"`)
	fs.BoolVar(&f.ranges, "ranges", false, `describe moments as "this week", "last month" and so on`)
	fs.BoolVar(&f.accessibility, "accessibility", false, "wrap phrases in a <time> element with an aria-label")
	fs.Float64Var(&f.justNow, "just-now", 30, `distance in seconds below which a moment is "just now"`)
	fs.StringToStringVar(&f.thresholds, "threshold", nil, "unit threshold override in seconds, e.g. --threshold hour=1800")
	fs.BoolVar(&f.validate, "validate", false, "validate moments and options before formatting")
	fs.StringVar(&f.color, "color", "", "colorize phrases (auto|always|never)")
}

// apply overlays the changed flags onto cfg.
func (f *formatFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("locale") {
		cfg.Locale = f.locale
		cfg.LocaleFile = ""
	}
	if fs.Changed("locale-file") {
		cfg.LocaleFile = f.localeFile
	}
	if fs.Changed("preset") {
		cfg.Preset = f.preset
	}
	if fs.Changed("time-format") {
		cfg.TimeFormat = f.timeFormat
	}
	if fs.Changed("max-unit") {
		cfg.MaxUnit = f.maxUnit
	}
	if fs.Changed("include-time") {
		cfg.IncludeTime = ptr.To(f.includeTime)
	}
	if fs.Changed("words") {
		cfg.UseWords = ptr.To(f.words)
	}
	if fs.Changed("fuzzy") {
		cfg.Fuzzy = ptr.To(f.fuzzy)
	}
	if fs.Changed("ranges") {
		cfg.Ranges = ptr.To(f.ranges)
	}
	if fs.Changed("accessibility") {
		cfg.Accessibility = ptr.To(f.accessibility)
	}
	if fs.Changed("just-now") {
		cfg.JustNow = ptr.To(f.justNow)
	}
	if fs.Changed("threshold") {
		if cfg.Thresholds == nil {
			cfg.Thresholds = make(map[string]float64, len(f.thresholds))
		}
		for name, v := range f.thresholds {
			secs, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid --threshold %s=%s: %w", name, v, err)
			}
			cfg.Thresholds[name] = secs
		}
	}
	if fs.Changed("validate") {
		cfg.Validate = f.validate
	}
	if fs.Changed("color") {
		cfg.Color = f.color
	}
	return nil
}

// session is the resolved state of one formatting command.
type session struct {
	formatter *timeutil.Formatter
	opts      timeutil.Options
	now       time.Time
	color     bool
}

func (a *app) session(cmd *cobra.Command) (*session, error) {
	var loadOpts []config.Option
	if a.flags.configFile != "" {
		loadOpts = append(loadOpts, config.WithFile(a.flags.configFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return nil, err
	}
	if err := a.flags.apply(cmd.Flags(), &cfg); err != nil {
		return nil, err
	}

	opts, err := cfg.FormatOptions()
	if err != nil {
		return nil, err
	}
	validation.SetRuntimeValidation(cfg.Validate)
	if cfg.Validate {
		res := validation.ValidateFormatOptions(opts)
		for _, w := range res.Warnings {
			fmt.Fprintf(a.errOut, "Warning: %s\n", w)
		}
		if err := res.Err(); err != nil {
			return nil, fmt.Errorf("invalid options: %w", err)
		}
	}

	now := a.clock.Now()
	if a.flags.now != "" {
		if now, err = timeutil.ParseMoment(a.flags.now, time.Local); err != nil {
			return nil, fmt.Errorf("invalid --now: %w", err)
		}
	}
	color, err := a.colorEnabled(cfg.Color)
	if err != nil {
		return nil, err
	}
	return &session{
		formatter: timeutil.New(timeutil.WithClock(a.clock), timeutil.WithValidator(validation.Hook{})),
		opts:      opts,
		now:       now,
		color:     color,
	}, nil
}

// render aligns the comments of text and colors them by bucket. keys maps a
// phrase to the bucket that produced it.
func (s *session) render(text string, keys map[string]string) string {
	var cm *output.ColorManager
	if s.color {
		cm = output.NewColorManager()
	}
	return output.FormatOutput(text, cm, output.KeyByText(keys))
}
