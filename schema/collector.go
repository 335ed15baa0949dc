package schema

import "sort"

// Collect walks every environment document in lock-step and returns, for
// each dotted property path with at least one primitive-or-array occurrence,
// the set of distinct leaf values observed at that path across all
// environments that define it.
//
// Arrays and primitives terminate a path; object values route the walk one
// level deeper. Paths whose every occurrence is an object never appear in
// the result, only their descendants do. Environments whose sub-document
// at the current level is not an object are skipped, not rejected: kind
// disagreements are the consistency validator's concern, and the collector
// must keep working on whatever overlap exists.
func Collect(envs EnvironmentSet) map[string]*ValueSet {
	out := make(map[string]*ValueSet)
	collectInto(map[string]Value(envs), "", out)
	return out
}

func collectInto(docs map[string]Value, prefix string, out map[string]*ValueSet) {
	objects := objectDocs(docs)
	if len(objects) == 0 {
		return
	}

	for _, key := range sortedKeyUnion(objects) {
		path := joinPath(prefix, key)

		set := &ValueSet{}
		var nested map[string]Value

		// Environments iterate in sorted name order so that value-set
		// insertion order, and therefore union member order, is stable.
		for _, env := range sortedNames(objects) {
			value, ok := objects[env].Obj[key]
			if !ok {
				continue
			}
			if value.Kind == KindObject {
				if nested == nil {
					nested = make(map[string]Value)
				}
				nested[env] = value
			} else {
				set.Add(value)
			}
		}

		if set.Len() > 0 {
			out[path] = set
		}
		if len(nested) > 0 {
			collectInto(nested, path, out)
		}
	}
}

// objectDocs filters a document map down to the entries of object kind.
func objectDocs(docs map[string]Value) map[string]Value {
	objects := make(map[string]Value, len(docs))
	for env, doc := range docs {
		if doc.Kind == KindObject {
			objects[env] = doc
		}
	}
	return objects
}

// sortedKeyUnion returns the union of all object keys across the documents,
// sorted lexicographically.
func sortedKeyUnion(docs map[string]Value) []string {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for key := range doc.Obj {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedNames(docs map[string]Value) []string {
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
