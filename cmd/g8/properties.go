package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mercator-hq/g8/pkg/cli"
	"mercator-hq/g8/pkg/g8/props"

	"gopkg.in/yaml.v3"
)

// propertyFlags are shared by commands that take properties.
type propertyFlags struct {
	file string
	set  []string
}

// readPropertyPairs reads a property file. Files ending in .yaml or .yml
// hold a flat mapping of scalars; everything else is property text.
// Duplicate keys are kept.
func readPropertyPairs(path string) ([]props.Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read property file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlPairs(path, data)
	default:
		return props.NewParser(props.WithSource(path)).ParsePairs(string(data))
	}
}

// yamlPairs keeps the document order of the mapping, which matters for
// defaults that reference earlier properties.
func yamlPairs(path string, data []byte) ([]props.Pair, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: expected a mapping of property names to values", path)
	}

	pairs := make([]props.Pair, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s:%d: property %q must be a scalar", path, value.Line, key.Value)
		}
		v := value.Value
		if value.Tag == "!!null" {
			v = ""
		}
		pairs = append(pairs, props.NewPair(key.Value, v))
	}
	return pairs, nil
}

// loadPropertyFile reads a property file into a set.
func loadPropertyFile(path string) (*props.Set, error) {
	pairs, err := readPropertyPairs(path)
	if err != nil {
		return nil, err
	}
	return props.NewSet(pairs...), nil
}

// parseSetFlags turns repeated --set key=value flags into a set. Later flags
// win.
func parseSetFlags(values []string) (*props.Set, error) {
	set := props.NewSet()
	for _, kv := range values {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, cli.NewConfigError("set", fmt.Sprintf("expected key=value, got %q", kv))
		}
		set.Put(key, value)
	}
	return set, nil
}

// resolve merges the property file, if any, with --set overrides.
func (f *propertyFlags) resolve() (*props.Set, error) {
	set := props.NewSet()
	if f.file != "" {
		loaded, err := loadPropertyFile(f.file)
		if err != nil {
			return nil, err
		}
		set = loaded
	}
	overrides, err := parseSetFlags(f.set)
	if err != nil {
		return nil, err
	}
	set.Merge(overrides)
	return set, nil
}
