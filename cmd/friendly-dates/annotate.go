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
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog/v2"

	"github.com/ahmetb/friendly-dates/internal/annotate"
	"github.com/ahmetb/friendly-dates/internal/parser"
)

type position string

const (
	Inline position = "inline"
	Above  position = "above"
)

func parsePosition(s string) (position, error) {
	switch p := position(s); p {
	case Inline, Above:
		return p, nil
	}
	return "", fmt.Errorf("invalid --position %q (valid: inline, above)", s)
}

func (a *app) annotateCmd() *cobra.Command {
	var (
		pos  string
		keys []string
	)
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Annotate the timestamps of YAML read from stdin",
		Long: `annotate reads a YAML stream from stdin, attaches a relative phrase as a
comment to every value that holds a timestamp, and writes the YAML to stdout.

Usage:
  kubectl get deploy nginx -o yaml | friendly-dates annotate
  friendly-dates annotate --keys creationTimestamp,lastTransitionTime < pods.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := parsePosition(pos)
			if err != nil {
				return err
			}
			s, err := a.session(cmd)
			if err != nil {
				return err
			}
			docs, err := parser.ParseDocuments(a.in)
			if err != nil {
				return err
			}

			opts := annotate.Options{
				Above:    p == Above,
				Now:      s.now,
				Format:   s.opts,
				Keys:     sets.New(keys...),
				Location: s.now.Location(),
			}
			colorKeys := make(map[string]string)
			for i, doc := range docs {
				anns, err := annotate.Annotate(doc, s.formatter, opts)
				if err != nil {
					return fmt.Errorf("document %d: %w", i+1, err)
				}
				for _, an := range anns {
					klog.V(4).InfoS("annotated", "doc", i+1, "path", an.Path, "bucket", an.Result.Bucket)
					colorKeys[an.Result.Text] = string(an.Result.Bucket)
				}
			}

			var buf bytes.Buffer
			if err := parser.EncodeDocuments(&buf, docs); err != nil {
				return err
			}
			_, err = io.WriteString(a.out, s.render(buf.String(), colorKeys))
			return err
		},
	}
	cmd.Flags().StringVarP(&pos, "position", "p", string(Inline), "comment position on the yaml (inline|above)")
	cmd.Flags().StringSliceVar(&keys, "keys", nil, "only annotate values of these mapping keys")
	return cmd
}
