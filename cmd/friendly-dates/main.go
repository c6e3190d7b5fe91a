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
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/ahmetb/friendly-dates/internal/output"
)

// app carries the process IO and the state shared by every subcommand.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	clock  clock.PassiveClock
	flags  formatFlags
}

func main() {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr, clock: clock.RealClock{}}
	err := a.rootCmd().Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friendly-dates [TIMESTAMP...]",
		Short: "Describe moments in time as human friendly relative phrases",
		Long: `friendly-dates turns timestamps into phrases such as "two hours ago",
"Yesterday at 6:00 PM" or "Next Thursday at 9:00 AM".

Timestamps are read from the arguments, or one per line from stdin:
  friendly-dates 2024-01-15T09:30:00Z 1705312800000
  kubectl get pods -o jsonpath='{..creationTimestamp}' | tr ' ' '\n' | friendly-dates

Defaults can be stored in .friendly-dates.yaml (working directory or $HOME)
or in FRIENDLY_DATES_* environment variables. Flags win over both.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runFormat,
	}
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	a.flags.register(cmd.PersistentFlags())
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		a.annotateCmd(),
		a.validateCmd(),
		a.localesCmd(),
		a.benchCmd(),
	)
	return cmd
}

// colorEnabled resolves the --color mode against the output stream.
func (a *app) colorEnabled(mode string) (bool, error) {
	m, err := output.ParseColorMode(mode)
	if err != nil {
		return false, err
	}
	tty := false
	if f, ok := a.out.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return output.ResolveColor(m, tty), nil
}
