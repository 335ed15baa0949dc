package schema

import "strings"

// ArrayType renders the single bracketed element type for all arrays
// observed at one property path. Elements from every array are flattened
// into one union, deduplicated by rendered token (so the number 1 and the
// string '1' stay distinct while two object elements collapse into one
// "unknown"). Nested arrays recurse and contribute their bracketed token
// verbatim; object elements fall back to "unknown" rather than being
// expanded into structural types.
func ArrayType(arrays []Value) string {
	var tokens []string
	seen := make(map[string]struct{})

	add := func(tok string) {
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}

	for _, arr := range arrays {
		for _, elem := range arr.Arr {
			switch elem.Kind {
			case KindArray:
				add(ArrayType([]Value{elem}))
			case KindObject:
				add("unknown")
			default:
				add(RenderLiteral(elem))
			}
		}
	}

	if len(tokens) == 0 {
		return "readonly (unknown)[]"
	}
	return "readonly (" + strings.Join(tokens, " | ") + ")[]"
}
