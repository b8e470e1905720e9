package roadmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	rerrors "github.com/matzehuels/roadmap/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", rerrors.New(rerrors.ErrCodeInvalidFormat, "unsupported document extension %q (want .json, .toml, .yaml)", filepath.Ext(path))
	}
}

// ReadFile reads and builds a roadmap document from disk.
func ReadFile(path string) (*Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Read decodes a document in the given format and builds its graph.
func Read(r io.Reader, format Format) (*Graph, error) {
	doc, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return doc.Graph()
}

// Decode decodes a document without building it.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	default:
		return nil, rerrors.New(rerrors.ErrCodeInvalidFormat, "unknown document format %q", format)
	}
	if err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeInvalidFormat, err, "decode %s", format)
	}
	return &doc, nil
}

// WriteFile writes g to path, choosing the encoding from the extension.
func WriteFile(g *Graph, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(g, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes g as a coordinate document.
func Write(g *Graph, w io.Writer, format Format) error {
	doc := ToDocument(g)
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	default:
		return rerrors.New(rerrors.ErrCodeInvalidFormat, "unknown document format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Marshal returns the canonical JSON form of g. Equal graphs marshal to
// equal bytes, which makes the output usable as a cache key input.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf, FormatJSON); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
