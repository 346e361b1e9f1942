package macro_test

import (
	"testing"

	"github.com/0xalexb/yamlvars/macro"

	"github.com/stretchr/testify/assert"
)

func TestReplace(t *testing.T) {
	t.Parallel()

	resolver := macro.MapResolver{
		"WORKSPACE":    "/var/lib/ci/workspace",
		"ENV":          "staging",
		"build.number": "42",
		"EMPTY":        "",
	}

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain reference",
			input:    "$WORKSPACE/config.yml",
			expected: "/var/lib/ci/workspace/config.yml",
		},
		{
			name:     "braced reference",
			input:    "${WORKSPACE}/envs/${ENV}.yml",
			expected: "/var/lib/ci/workspace/envs/staging.yml",
		},
		{
			name:     "dotted name needs braces",
			input:    "${build.number}-$build.number",
			expected: "42-$build.number",
		},
		{
			name:     "unresolved reference is kept",
			input:    "${MISSING}/$OTHER/config.yml",
			expected: "${MISSING}/$OTHER/config.yml",
		},
		{
			name:     "empty value resolves",
			input:    "a${EMPTY}b",
			expected: "ab",
		},
		{
			name:     "no references",
			input:    "config/settings.yml",
			expected: "config/settings.yml",
		},
		{
			name:     "lone dollar",
			input:    "cost$ and ${}",
			expected: "cost$ and ${}",
		},
		{
			name:     "escaped dollar",
			input:    "price $$5 and $${ENV}",
			expected: "price $5 and ${ENV}",
		},
		{
			name:     "escape is not rescanned",
			input:    "$$WORKSPACE",
			expected: "$WORKSPACE",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, macro.Replace(testCase.input, resolver))
		})
	}
}

func TestReplace_NilResolver(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "${WORKSPACE}/a.yml", macro.Replace("${WORKSPACE}/a.yml", nil))
}

func TestReplace_DoesNotRescanValues(t *testing.T) {
	t.Parallel()

	resolver := macro.MapResolver{
		"A": "${B}",
		"B": "never",
	}

	assert.Equal(t, "${B}", macro.Replace("${A}", resolver))
}

func TestReplace_Stages(t *testing.T) {
	t.Parallel()

	env := macro.MapResolver{"WORKSPACE": "/ws"}
	variables := macro.MapResolver{"TARGET": "prod", "WORKSPACE": "/ignored"}

	result := macro.Replace(macro.Replace("${WORKSPACE}/${TARGET}.yml", env), variables)

	assert.Equal(t, "/ws/prod.yml", result)
}
