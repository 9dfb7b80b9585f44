// Package loader reads structured documents from disk or raw bytes and
// parses them into generic tree values (map[string]interface{},
// []interface{}, and scalars) for the explorer.
//
// JSON is the primary format. Files with a .yaml/.yml or .toml extension are
// dispatched to the matching parser; extensionless input falls back to
// content heuristics with JSON tried first.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a file and parses it into a single root node.
// A read failure is reported with the offending path and must surface before
// any terminal state is touched by the caller.
func LoadFile(path string) (interface{}, error) {
	return LoadFileWithLogger(path, logr.Discard())
}

// LoadFileWithLogger is like LoadFile but records extension dispatch and
// fallback parse attempts on the provided logger.
func LoadFileWithLogger(path string, lgr logr.Logger) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		lgr.V(1).Info("parsing by extension", "path", path, "format", "json")
		return loadJSON(data)
	case ".yaml", ".yml":
		lgr.V(1).Info("parsing by extension", "path", path, "format", "yaml")
		return loadYAML(data)
	case ".toml":
		lgr.V(1).Info("parsing by extension", "path", path, "format", "toml")
		return loadTOML(data)
	default:
		lgr.V(1).Info("no recognized extension, auto-detecting", "path", path)
		return LoadRootBytesWithLogger(data, lgr)
	}
}

// LoadRoot parses input into a single root node, auto-detecting the format.
func LoadRoot(input string) (interface{}, error) {
	return LoadRootBytesWithLogger([]byte(input), logr.Discard())
}

// LoadRootBytes parses input bytes into a single root node.
func LoadRootBytes(data []byte) (interface{}, error) {
	return LoadRootBytesWithLogger(data, logr.Discard())
}

// LoadRootBytesWithLogger parses input bytes into a single root node,
// recording fallback parse attempts on the provided logger.
//
// Detection order: JSON for input starting with '{' or '[' or a JSON scalar,
// TOML when the content matches TOML section/key=value shapes, YAML last
// (YAML accepts nearly anything, so it is the final fallback).
func LoadRootBytesWithLogger(data []byte, lgr logr.Logger) (interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	if looksLikeJSON(trimmed) {
		node, err := loadJSON(trimmed)
		if err == nil {
			return node, nil
		}
		lgr.V(1).Info("JSON parse failed, falling through", "error", err.Error())
	}

	if isLikelyTOML(string(trimmed)) {
		node, err := loadTOML(trimmed)
		if err == nil {
			return node, nil
		}
		lgr.V(1).Info("TOML parse failed, falling through", "error", err.Error())
	}

	return loadYAML(trimmed)
}

// looksLikeJSON reports whether the input plausibly starts a JSON document.
func looksLikeJSON(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	switch data[0] {
	case '{', '[', '"':
		return true
	}
	return json.Valid(data)
}

// loadJSON parses a single JSON document. Numbers are decoded with UseNumber
// so they display exactly as written (no float64 round-tripping).
func loadJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var node interface{}
	if err := dec.Decode(&node); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return node, nil
}

// loadYAML parses a single YAML document.
func loadYAML(data []byte) (interface{}, error) {
	var node interface{}
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return normalize(node), nil
}

// loadTOML parses TOML content.
func loadTOML(data []byte) (interface{}, error) {
	var node interface{}
	if err := toml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return normalize(node), nil
}

// isLikelyTOML heuristic: returns true if the input looks like TOML.
// Detects section headers [name] or key = value patterns that are distinct
// from YAML syntax.
func isLikelyTOML(input string) bool {
	lines := strings.Split(input, "\n")

	// [section], [[array]], quoted and dotted key variants. Excludes JSON
	// arrays like [1, 2, 3] which carry commas/spaces without quotes.
	sectionPattern := regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)

	// key = value (not key: value, which is YAML).
	keyValuePattern := regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)

	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0

	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		nonEmptyCount++

		if sectionPattern.MatchString(line) {
			sectionCount++
		}
		if keyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}

	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}

// normalize rewrites parser-specific container types into the generic
// map[string]interface{} / []interface{} shape the explorer consumes.
// yaml.v3 produces map[string]interface{} for string-keyed maps but falls
// back to map[interface{}]interface{} for mixed keys; those keys are
// stringified here so the tree is uniformly navigable.
func normalize(node interface{}) interface{} {
	switch t := node.(type) {
	case map[string]interface{}:
		for k, v := range t {
			t[k] = normalize(v)
		}
		return t
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, v := range t {
			m[fmt.Sprint(k)] = normalize(v)
		}
		return m
	case []interface{}:
		for i, v := range t {
			t[i] = normalize(v)
		}
		return t
	default:
		return node
	}
}
