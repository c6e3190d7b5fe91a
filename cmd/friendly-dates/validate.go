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
	"os"

	"github.com/spf13/cobra"

	"github.com/ahmetb/friendly-dates/internal/validation"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check custom locale files for missing or malformed phrases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("error reading locale file: %w", err)
				}
				res := validation.ValidateLocaleYAML(data)
				printLocaleResult(a.out, path, res)
				if !res.Valid() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d locale files failed validation", failed, len(args))
			}
			return nil
		},
	}
}

func printLocaleResult(w io.Writer, path string, res validation.LocaleResult) {
	status := "OK"
	if !res.Valid() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", path, status, res.LocaleID)
	for _, e := range res.Errors {
		fmt.Fprintf(w, "  error: %v\n", e)
	}
	for _, k := range res.MissingKeys {
		fmt.Fprintf(w, "  missing: %s\n", k)
	}
	for _, msg := range res.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", msg)
	}
}
