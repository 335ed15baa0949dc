package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ConsistentEnvironments(t *testing.T) {
	envs := EnvironmentSet{
		"default": mustDecode(t, `{"app":{"name":"x"}}`),
		"dev":     mustDecode(t, `{"app":{"name":"dev"},"debug":true}`),
		"prod":    mustDecode(t, `{"app":{"name":"prod"},"debug":false}`),
	}

	report := Validate(envs, true)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Diagnostics)
}

func TestValidate_FlatMismatch(t *testing.T) {
	envs := EnvironmentSet{
		"staging": mustDecode(t, `{"app":{"debug":true}}`),
		"prod":    mustDecode(t, `{"app":{}}`),
	}

	report := Validate(envs, true)
	require.False(t, report.Valid)
	require.Len(t, report.Diagnostics, 1)
	assert.Contains(t, report.Diagnostics[0], `"app.debug"`)
	assert.Contains(t, report.Diagnostics[0], "[staging]")
	assert.Contains(t, report.Diagnostics[0], "[prod]")
}

func TestValidate_NestedMismatchReportsFullPath(t *testing.T) {
	envs := EnvironmentSet{
		"dev":  mustDecode(t, `{"email":{"templates":{"welcome":{"subject":"hi","debugInfo":true}}}}`),
		"prod": mustDecode(t, `{"email":{"templates":{"welcome":{"subject":"hello"}}}}`),
	}

	report := Validate(envs, true)
	require.False(t, report.Valid)
	require.Len(t, report.Diagnostics, 1)
	assert.Contains(t, report.Diagnostics[0], `"email.templates.welcome.debugInfo"`)
}

func TestValidate_DefaultIsExcluded(t *testing.T) {
	// default defines nothing the peers have; peers agree with each other.
	envs := EnvironmentSet{
		"default": mustDecode(t, `{"base":true}`),
		"dev":     mustDecode(t, `{"port":1}`),
		"prod":    mustDecode(t, `{"port":2}`),
	}

	report := Validate(envs, true)
	assert.True(t, report.Valid, "default must not be compared against peers")

	// With exclusion off, default becomes a peer and mismatches appear.
	report = Validate(envs, false)
	assert.False(t, report.Valid)
}

func TestValidate_FewerThanTwoPeers(t *testing.T) {
	envs := EnvironmentSet{
		"default": mustDecode(t, `{"a":1}`),
		"prod":    mustDecode(t, `{"b":2}`),
	}

	report := Validate(envs, true)
	assert.True(t, report.Valid, "a single peer has nothing to compare against")
}

func TestValidate_AllMismatchesReported(t *testing.T) {
	envs := EnvironmentSet{
		"a": mustDecode(t, `{"x":1,"y":2}`),
		"b": mustDecode(t, `{"z":3}`),
	}

	report := Validate(envs, true)
	require.False(t, report.Valid)
	// Every mismatched path is reported, not just the first.
	require.Len(t, report.Diagnostics, 3)
	// Paths are sorted lexicographically for reproducibility.
	assert.Contains(t, report.Diagnostics[0], `"x"`)
	assert.Contains(t, report.Diagnostics[1], `"y"`)
	assert.Contains(t, report.Diagnostics[2], `"z"`)
}

func TestValidate_NonObjectDocumentsAreSkipped(t *testing.T) {
	envs := EnvironmentSet{
		"a":     mustDecode(t, `{"x":1}`),
		"weird": mustDecode(t, `"not an object"`),
	}

	report := Validate(envs, true)
	assert.True(t, report.Valid, "non-object documents leave fewer than two peers")
}

func TestValidate_IntermediateObjectPathsCompared(t *testing.T) {
	envs := EnvironmentSet{
		"a": mustDecode(t, `{"db":{"host":"x"}}`),
		"b": mustDecode(t, `{}`),
	}

	report := Validate(envs, true)
	require.False(t, report.Valid)
	// Both the object path and its leaf are missing in b.
	require.Len(t, report.Diagnostics, 2)
	assert.Contains(t, report.Diagnostics[0], `"db"`)
	assert.Contains(t, report.Diagnostics[1], `"db.host"`)
}
