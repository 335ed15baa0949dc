package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Report is the outcome of a consistency validation pass. It is created
// once per call and never mutated afterwards; a false Valid means at least
// one property path is defined in some compared environments but not all.
type Report struct {
	Valid       bool
	Diagnostics []string
}

// Validate checks that every compared environment defines the same set of
// property paths. When excludeDefault is true the "default" document is
// left out of the comparison: it is the base every environment layers over,
// not a peer. Fewer than two comparable object documents trivially validate.
//
// Validate never fails; inconsistency is reported as data. The generation
// driver is responsible for turning an invalid report into a hard error.
func Validate(envs EnvironmentSet, excludeDefault bool) Report {
	var selected []string
	for _, name := range envs.Names() {
		if excludeDefault && name == DefaultEnvironment {
			continue
		}
		if envs[name].Kind != KindObject {
			continue
		}
		selected = append(selected, name)
	}

	if len(selected) < 2 {
		return Report{Valid: true}
	}

	pathsByEnv := make(map[string]map[string]struct{}, len(selected))
	union := make(map[string]struct{})
	for _, env := range selected {
		paths := make(map[string]struct{})
		structuralPaths(envs[env], "", paths)
		pathsByEnv[env] = paths
		for path := range paths {
			union[path] = struct{}{}
		}
	}

	allPaths := make([]string, 0, len(union))
	for path := range union {
		allPaths = append(allPaths, path)
	}
	// Sorted paths keep diagnostics reproducible across runs.
	sort.Strings(allPaths)

	var diagnostics []string
	for _, path := range allPaths {
		var have, lack []string
		for _, env := range selected {
			if _, ok := pathsByEnv[env][path]; ok {
				have = append(have, env)
			} else {
				lack = append(lack, env)
			}
		}
		if len(lack) > 0 {
			diagnostics = append(diagnostics, fmt.Sprintf(
				"property %q is defined in [%s] but missing in [%s]",
				path, strings.Join(have, ", "), strings.Join(lack, ", ")))
		}
	}

	return Report{Valid: len(diagnostics) == 0, Diagnostics: diagnostics}
}

// structuralPaths records every dotted property path reachable from v by
// descending through object nodes only. Every key contributes a path,
// including keys whose value is itself an object; arrays and primitives
// terminate the descent.
func structuralPaths(v Value, prefix string, out map[string]struct{}) {
	if v.Kind != KindObject {
		return
	}
	for key, child := range v.Obj {
		path := joinPath(prefix, key)
		out[path] = struct{}{}
		if child.Kind == KindObject {
			structuralPaths(child, path, out)
		}
	}
}
