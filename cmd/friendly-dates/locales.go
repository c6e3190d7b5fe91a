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

	"github.com/spf13/cobra"

	"github.com/ahmetb/friendly-dates/internal/locale"
)

func (a *app) localesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the built-in locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, id := range locale.Available() {
				cfg, err := locale.Load(id)
				if err != nil {
					return err
				}
				suffix := ""
				if id == locale.DefaultID {
					suffix = " (default)"
				}
				fmt.Fprintf(a.out, "%s\t%s%s\n", id, cfg.Name, suffix)
			}
			return nil
		},
	}
}
