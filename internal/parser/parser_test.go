package parser

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestParseDocuments_SingleDoc(t *testing.T) {
	docs, err := ParseDocuments(strings.NewReader("createdAt: 2024-01-15\n"))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, yaml.DocumentNode, docs[0].Kind)
	assert.Equal(t, yaml.MappingNode, docs[0].Content[0].Kind)
	assert.Equal(t, "!!timestamp", docs[0].Content[0].Content[1].ShortTag())
}

func TestParseDocuments_MultiDoc(t *testing.T) {
	data, err := os.ReadFile("../../testdata/roundtrip/multidoc.yaml")
	require.NoError(t, err)

	docs, err := ParseDocuments(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	for i, doc := range docs {
		assert.Equal(t, yaml.DocumentNode, doc.Kind, "doc %d", i)
		assert.Equal(t, yaml.MappingNode, doc.Content[0].Kind, "doc %d", i)
	}
}

func TestParseDocuments_EmptyInput(t *testing.T) {
	docs, err := ParseDocuments(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestParseDocuments_InvalidYAML(t *testing.T) {
	_, err := ParseDocuments(strings.NewReader("a: 1\n---\nb: [1, 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML parse error in document 2")
}

func roundTrip(t *testing.T, fixture string) {
	t.Helper()
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)

	docs, err := ParseDocuments(bytes.NewReader(data))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeDocuments(&buf, docs))
	assert.Equal(t, strings.TrimRight(string(data), "\n"), strings.TrimRight(buf.String(), "\n"))
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []string{"events.yaml", "multidoc.yaml"} {
		t.Run(f, func(t *testing.T) {
			roundTrip(t, "../../testdata/roundtrip/"+f)
		})
	}
}
