package translation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader reads per-locale translation files from a language directory.
//
// A locale's lines live in <path>/<locale>.yaml, .yml or .json, whichever is
// found first. Files may nest groups; nested keys flatten into dotted paths:
//
//	# cs.yaml
//	messages:
//	  welcome: "Vítejte, :name"
//
// loads as "messages.welcome".
type Loader struct {
	path string
}

// NewLoader creates a loader over a language directory.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the language directory.
func (l *Loader) Path() string { return l.path }

// Load reads a locale's lines. A missing locale yields an empty map, not an
// error — the translator falls back to its fallback locale or the key.
func (l *Loader) Load(locale string) (map[string]string, error) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		file := filepath.Join(l.path, locale+ext)
		raw, err := os.ReadFile(file)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		var tree map[string]any
		if ext == ".json" {
			err = json.Unmarshal(raw, &tree)
		} else {
			err = yaml.Unmarshal(raw, &tree)
		}
		if err != nil {
			return nil, fmt.Errorf("translation: parse %s: %w", file, err)
		}

		lines := make(map[string]string)
		flatten("", tree, lines)
		return lines, nil
	}
	return map[string]string{}, nil
}

// flatten turns nested groups into dotted keys; non-string leaves are
// stringified.
func flatten(prefix string, tree map[string]any, out map[string]string) {
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprintf("%v", v)
		}
	}
}
