package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encode serializes the graph for the given file extension (".json" or
// ".yaml"/".yml"). JSON output is indented for human readability; use
// Canonical for deterministic bytes.
func Encode(g *ProjectGraph, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".json":
		data, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding graph as JSON: %w", err)
		}
		return append(data, '\n'), nil
	case ".yaml", ".yml":
		data, err := yaml.Marshal(g)
		if err != nil {
			return nil, fmt.Errorf("encoding graph as YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", ext)
	}
}

// Decode parses graph bytes in the format implied by the file extension.
func Decode(data []byte, ext string) (*ProjectGraph, error) {
	var g ProjectGraph
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("decoding JSON graph: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("decoding YAML graph: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", ext)
	}
	return &g, nil
}

// WriteFile writes the graph to path, format chosen by extension.
func WriteFile(path string, g *ProjectGraph) error {
	data, err := Encode(g, filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}

// ReadFile reads a graph from path, format chosen by extension.
func ReadFile(path string) (*ProjectGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}
	return Decode(data, filepath.Ext(path))
}
