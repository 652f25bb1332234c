package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"sigs.k8s.io/yaml"
)

// loadYAML is a kong.ConfigurationLoader for YAML files. Keys are flag
// names with dashes written as underscores, e.g.
//
//	verbose: true
//	exclude: ["**/obj/**", "*.g.cs"]
//	cache_size: 512
func loadYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(bytes.TrimSpace(js)) == 0 || bytes.Equal(bytes.TrimSpace(js), []byte("null")) {
		js = []byte("{}")
	}
	return kong.JSON(bytes.NewReader(js))
}
