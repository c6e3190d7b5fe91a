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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) runFormat(cmd *cobra.Command, args []string) error {
	s, err := a.session(cmd)
	if err != nil {
		return err
	}
	inputs := args
	if len(inputs) == 0 {
		if inputs, err = readLines(a.in); err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
	}

	var b strings.Builder
	keys := make(map[string]string, len(inputs))
	for _, in := range inputs {
		res, err := s.formatter.Resolve(moment(in), s.now, s.opts)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		keys[res.Text] = string(res.Bucket)
		fmt.Fprintf(&b, "%s # %s\n", in, res.Text)
	}
	_, err = io.WriteString(a.out, s.render(b.String(), keys))
	return err
}

// moment reads all-digit input as epoch milliseconds.
func moment(in string) any {
	if ms, err := strconv.ParseInt(in, 10, 64); err == nil {
		return ms
	}
	return in
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
