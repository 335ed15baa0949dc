// Package declaration renders the synthesized interface body into the final
// module-augmentation declaration file and decides, via a content hash
// embedded in the previous output, whether regeneration is needed at all.
package declaration

import (
	"fmt"
	"strings"
)

// InterfaceName is the fixed name of the augmented interface. Downstream
// type checkers resolve configuration lookups against it.
const InterfaceName = "UserConfigSchema"

// DefaultModule is the module identity the declaration augments when the
// caller does not configure one. It must match the consuming package's
// import name to take effect.
const DefaultModule = "confgen"

// Emit wraps a synthesized interface body in the fixed declaration
// envelope. The envelope text is part of the output contract and must stay
// byte-stable: downstream tooling pattern-matches the banner and the
// "Generated hash:" comment. contentHash is optional; when empty the hash
// line is omitted entirely.
func Emit(body, sourceDirLabel, moduleName, contentHash string) string {
	if moduleName == "" {
		moduleName = DefaultModule
	}

	var sb strings.Builder
	sb.WriteString("/**\n")
	sb.WriteString(" * Auto-generated type definitions from JSON configuration files\n")
	fmt.Fprintf(&sb, " * Generated from: %s\n", sourceDirLabel)
	sb.WriteString(" * DO NOT EDIT MANUALLY - This file is automatically generated\n")
	if contentHash != "" {
		fmt.Fprintf(&sb, " * Generated hash: %s\n", contentHash)
	}
	sb.WriteString(" */\n\n")
	fmt.Fprintf(&sb, "declare module '%s' {\n", moduleName)
	fmt.Fprintf(&sb, "  interface %s %s\n", InterfaceName, body)
	sb.WriteString("}\n\nexport {}\n")

	return sb.String()
}

// StripHashLine removes the "Generated hash:" comment line from a
// declaration so that two outputs can be compared for semantic equality
// regardless of when they were generated.
func StripHashLine(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.Contains(line, "Generated hash:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
