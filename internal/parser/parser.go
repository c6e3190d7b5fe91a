// Package parser decodes and encodes multi-document YAML streams while
// keeping node styles and comments intact.
package parser

import (
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ParseDocuments decodes every document in r. Each returned node has
// Kind == yaml.DocumentNode.
func ParseDocuments(r io.Reader) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(r)
	var docs []*yaml.Node
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("YAML parse error in document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, &doc)
	}
}

// EncodeDocuments writes docs to w separated by "---", using a 2-space indent
// and compact sequences.
func EncodeDocuments(w io.Writer, docs []*yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	enc.CompactSeqIndent()
	for i, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("YAML encode error in document %d: %w", i+1, err)
		}
	}
	return enc.Close()
}
