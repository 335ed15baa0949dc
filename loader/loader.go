// Package loader reads a configuration directory into an EnvironmentSet.
// It owns everything about files (discovery, the error-injection
// deny-list, decoding, top-level shape checks) so the engine only ever
// sees valid in-memory documents.
package loader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/confgen/confgen/errors"
	"github.com/confgen/confgen/logger"
	"github.com/confgen/confgen/schema"
)

// ExcludedFiles are fixture filenames reserved for error-injection tests.
// Documents with these names never reach the engine.
var ExcludedFiles = map[string]struct{}{
	"invalid.json":    {},
	"malformed.json":  {},
	"non-object.json": {},
}

// configExtensions lists the document formats the loader accepts, keyed by
// lowercase extension.
var configExtensions = map[string]struct{}{
	".json": {},
	".yaml": {},
	".yml":  {},
}

// Eligible reports whether a filename names a loadable environment
// document.
func Eligible(name string) bool {
	if _, excluded := ExcludedFiles[name]; excluded {
		return false
	}
	_, ok := configExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// EligibleFiles returns the full paths of every loadable document in dir,
// sorted by filename. The sort order is load-bearing: the change-detection
// hash is computed over these files in this order.
func EligibleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrMissingConfigDir, "%s", dir)
		}
		return nil, errors.Wrapf(err, "failed to read config directory %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !Eligible(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDir loads every eligible document in dir into an EnvironmentSet. The
// filename stem becomes the environment name; the top level of each
// document must decode to an object.
func LoadDir(dir string) (schema.EnvironmentSet, error) {
	paths, err := EligibleFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyConfigSet, "%s", dir)
	}

	envs := make(schema.EnvironmentSet, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		stem := strings.TrimSuffix(name, filepath.Ext(name))

		if _, exists := envs[stem]; exists {
			return nil, errors.Newf("duplicate environment %q: multiple config files share the stem", stem)
		}

		doc, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if doc.Kind != schema.KindObject {
			return nil, errors.Newf("top level of %s must be an object, got %s", name, doc.Kind)
		}

		envs[stem] = doc
		logger.Debugw("Loaded environment document",
			logger.FieldEnvironment, stem,
			logger.FieldFile, path)
	}

	return envs, nil
}

func loadFile(path string) (schema.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Value{}, errors.Wrapf(err, "failed to read %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, err := schema.DecodeJSON(data)
		if err != nil {
			return schema.Value{}, errors.Wrapf(err, "failed to parse %s", path)
		}
		return doc, nil
	case ".yaml", ".yml":
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return schema.Value{}, errors.Wrapf(err, "failed to parse %s", path)
		}
		return schema.FromAny(normalizeYAML(raw)), nil
	default:
		return schema.Value{}, errors.Newf("unsupported config format: %s", path)
	}
}

// normalizeYAML rewrites yaml.v3's map[string]interface{} trees in place.
// yaml.v3 already decodes string-keyed mappings as map[string]interface{},
// but nested sequences still need element-wise normalization, and non-string
// keys are rejected by dropping to an unknown-friendly shape.
func normalizeYAML(raw interface{}) interface{} {
	switch v := raw.(type) {
	case map[string]interface{}:
		for k, e := range v {
			v[k] = normalizeYAML(e)
		}
		return v
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = normalizeYAML(e)
		}
		return out
	case []interface{}:
		for i, e := range v {
			v[i] = normalizeYAML(e)
		}
		return v
	default:
		return v
	}
}
