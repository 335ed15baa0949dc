package declaration

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"regexp"

	"github.com/confgen/confgen/errors"
)

// hashPattern matches the hash comment Emit writes into the declaration
// header. The format is fixed; extraction failure just forces regeneration.
var hashPattern = regexp.MustCompile(`Generated hash: ([0-9a-f]{64})`)

// HashFiles computes the content hash over the raw bytes of the given
// files, concatenated in the order provided. Callers pass filename-sorted
// paths so the hash is deterministic for a given directory state.
func HashFiles(paths []string) (string, error) {
	h := sha256.New()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read %s for hashing", path)
		}
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ExtractHash pulls the embedded content hash out of a previously emitted
// declaration. The second return is false when no hash comment is present
// or it does not match the fixed format.
func ExtractHash(content string) (string, bool) {
	m := hashPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ShouldRegenerate reports whether a declaration needs regenerating given
// the current input hash and the path of the previously emitted output.
// Missing output, unreadable output, or a hash that cannot be extracted all
// force regeneration; only an exact hash match skips it. This is purely an
// optimization, and callers may always force regeneration.
func ShouldRegenerate(currentHash, previousOutputPath string) bool {
	data, err := os.ReadFile(previousOutputPath)
	if err != nil {
		return true
	}
	previous, ok := ExtractHash(string(data))
	if !ok {
		return true
	}
	return previous != currentHash
}
