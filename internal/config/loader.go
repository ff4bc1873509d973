package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Namespace prefixes every extension setting key.
const Namespace = "shaderinspector"

// envPrefix is prepended to upper-cased setting names for environment overrides,
// e.g. SHADERINSPECTOR_CUSTOMDXCPATH or SHADERINSPECTOR_SHADERDEFAULTS_SHADERMODEL.
const envPrefix = "SHADERINSPECTOR_"

// Settings is a flat view over a settings file. Nested maps are flattened to
// dotted keys, so both {"shaderinspector": {"customDXCPath": ...}} and
// {"shaderinspector.customDXCPath": ...} address the same value.
type Settings struct {
	mu     sync.RWMutex
	values map[string]string
	getenv func(string) string
}

// New builds Settings from already-flattened values. Keys are full dotted keys.
func New(values map[string]string) *Settings {
	s := &Settings{values: make(map[string]string, len(values)), getenv: os.Getenv}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Load reads a settings file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (*Settings, error) {
	if path == "" {
		return nil, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension: %s", ext)
	}
	flat := map[string]string{}
	if err := flatten("", raw, flat); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return New(flat), nil
}

// listKeys may be written as lists; they are stored ';'-joined. Any other
// list inside the namespace is rejected since it would collapse into one value.
var listKeys = map[string]bool{
	Namespace + ".shaderDefaults.defines": true,
}

func flatten(prefix string, v any, out map[string]string) error {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if err := flatten(key, child, out); err != nil {
				return err
			}
		}
	case []any:
		if strings.HasPrefix(prefix, Namespace+".") && !listKeys[prefix] {
			return fmt.Errorf("%s must be a string, not a list", prefix)
		}
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, fmt.Sprint(e))
		}
		out[prefix] = strings.Join(parts, ";")
	case nil:
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(t)
	}
	return nil
}

// Get returns the extension setting name (without namespace), or "" if unset.
// An environment override takes precedence over the file.
func (s *Settings) Get(name string) string {
	if v := s.env(name); v != "" {
		return v
	}
	return s.Raw(Namespace + "." + name)
}

// Raw returns a value by its full dotted key, e.g. "editor.tabSize".
func (s *Settings) Raw(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores an extension setting (namespace added).
func (s *Settings) Set(name, value string) {
	s.mu.Lock()
	s.values[Namespace+"."+name] = value
	s.mu.Unlock()
}

// Keys lists all stored keys in sorted order.
func (s *Settings) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s *Settings) env(name string) string {
	if s.getenv == nil {
		return ""
	}
	key := envPrefix + strings.ToUpper(strings.ReplaceAll(name, ".", "_"))
	return s.getenv(key)
}
