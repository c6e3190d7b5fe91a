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
	"io"
	"slices"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/ahmetb/friendly-dates/internal/bench"
	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/timeutil"
)

var suiteNames = []string{"standard", "locales", "presets"}

func (a *app) benchCmd() *cobra.Command {
	var (
		opts   bench.Options
		warmup int
		suites []string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure formatting throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range suites {
				if !slices.Contains(suiteNames, s) {
					return fmt.Errorf("unknown suite %q (valid: standard, locales, presets)", s)
				}
			}
			opts.Warmup = &warmup
			opts.Log = klog.V(2).Enabled()

			f := timeutil.New(timeutil.WithClock(a.clock))
			r := bench.NewRunner(a.clock)
			for _, s := range suites {
				var err error
				switch s {
				case "standard":
					_, err = r.Standard(f.Format, opts)
				case "locales":
					var locs []*locale.Config
					if locs, err = builtinLocales(); err == nil {
						_, err = r.Locales(f.Format, locs, opts)
					}
				case "presets":
					_, err = r.Presets(f.Format, opts)
				}
				if err != nil {
					return err
				}
			}
			_, err := io.WriteString(a.out, r.Report())
			return err
		},
	}
	cmd.Flags().IntVar(&opts.Iterations, "iterations", bench.DefaultIterations, "measured calls per benchmark")
	cmd.Flags().IntVar(&warmup, "warmup", bench.DefaultWarmup, "unmeasured calls before each benchmark")
	cmd.Flags().BoolVar(&opts.MeasureMemory, "memory", false, "report heap growth per benchmark")
	cmd.Flags().StringSliceVar(&suites, "suite", suiteNames, "suites to run (standard|locales|presets)")
	return cmd
}

func builtinLocales() ([]*locale.Config, error) {
	var out []*locale.Config
	for _, id := range locale.Available() {
		cfg, err := locale.Load(id)
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}
