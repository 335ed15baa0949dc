package schema

import "strings"

// FallbackBody is emitted when no environment document is an object, so no
// structure can be synthesized at all.
const FallbackBody = "Record<string, unknown>"

// Synthesize renders the structural interface body for the merged
// environment documents. Keys are the sorted union across all object
// documents; each member is either a union of the literals collected for
// its path, a recursively synthesized nested body when the key only ever
// holds objects, or "unknown" for dead branches. depth sets the starting
// nesting level: members are indented two spaces per level and the closing
// brace aligns with the enclosing level. Indentation is cosmetic only.
func Synthesize(envs EnvironmentSet, values map[string]*ValueSet, depth int) string {
	return synthesizeBody(map[string]Value(envs), values, "", depth)
}

func synthesizeBody(docs map[string]Value, values map[string]*ValueSet, prefix string, depth int) string {
	objects := objectDocs(docs)
	if len(objects) == 0 {
		return FallbackBody
	}

	keys := sortedKeyUnion(objects)
	if len(keys) == 0 {
		return "{}"
	}

	indent := strings.Repeat("  ", depth+1)
	members := make([]string, 0, len(keys))

	for _, key := range keys {
		path := joinPath(prefix, key)

		if set, ok := values[path]; ok {
			members = append(members, indent+"readonly "+key+": "+unionType(set))
			continue
		}

		nested := make(map[string]Value)
		for env, doc := range objects {
			if child, ok := doc.Obj[key]; ok && child.Kind == KindObject {
				nested[env] = child
			}
		}
		if len(nested) > 0 {
			members = append(members, indent+"readonly "+key+": "+
				synthesizeBody(nested, values, path, depth+1))
		} else {
			// Key exists in the union but was neither collected as a leaf
			// nor found as an object anywhere. Dead branch.
			members = append(members, indent+"readonly "+key+": unknown")
		}
	}

	return "{\n" + strings.Join(members, "\n") + "\n" + strings.Repeat("  ", depth) + "}"
}

// unionType renders the type of one collected value set. A single value
// yields its literal (or array) type directly, never a one-element union.
// Multiple values join with " | ", deduplicated by rendered token; all
// array members flatten together into one bracketed element union rather
// than producing one bracketed type per environment.
func unionType(set *ValueSet) string {
	vals := set.Values()
	if len(vals) == 0 {
		return "unknown"
	}

	var arrays []Value
	for _, v := range vals {
		if v.Kind == KindArray {
			arrays = append(arrays, v)
		}
	}

	var tokens []string
	seen := make(map[string]struct{})
	add := func(tok string) {
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	arrayEmitted := false
	for _, v := range vals {
		switch v.Kind {
		case KindArray:
			// All arrays collapse into a single flattened element union,
			// emitted at the position of the first array member.
			if !arrayEmitted {
				add(ArrayType(arrays))
				arrayEmitted = true
			}
		case KindObject:
			add("unknown")
		default:
			add(RenderLiteral(v))
		}
	}

	return strings.Join(tokens, " | ")
}
