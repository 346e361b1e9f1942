package config_test

import (
	"testing"

	"github.com/0xalexb/yamlvars/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckYAMLFile(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		value   string
		kind    config.Kind
		message string
	}{
		{name: "empty", value: "", kind: config.KindError, message: "Please set a YAML file"},
		{name: "too short", value: "a.y", kind: config.KindWarning, message: "Isn't the file too short?"},
		{name: "four characters", value: "a.ym", kind: config.KindOK, message: ""},
		{name: "regular path", value: "${WORKSPACE}/vars.yml", kind: config.KindOK, message: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := config.CheckYAMLFile(testCase.value)

			assert.Equal(t, "yamlFile", result.Field)
			assert.Equal(t, testCase.kind, result.Kind)
			assert.Equal(t, testCase.message, result.Message)
		})
	}
}

func TestCheckMapLocation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		value   string
		kind    config.Kind
		message string
	}{
		{name: "empty", value: "", kind: config.KindError, message: "Please set the location where to find the parameters."},
		{name: "too short", value: "a.b", kind: config.KindWarning, message: "Isn't the map location too short?"},
		{name: "regular path", value: "deploy.staging", kind: config.KindOK, message: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := config.CheckMapLocation(testCase.value)

			assert.Equal(t, "mapLocation", result.Field)
			assert.Equal(t, testCase.kind, result.Kind)
			assert.Equal(t, testCase.message, result.Message)
		})
	}
}

func TestStepConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		cfg := config.StepConfig{YAMLFile: "vars.yml", MapLocation: "deploy.staging"}

		require.NoError(t, cfg.Validate())
	})

	t.Run("warnings do not fail", func(t *testing.T) {
		t.Parallel()

		cfg := config.StepConfig{YAMLFile: "v.y", MapLocation: "a.b"}

		require.NoError(t, cfg.Validate())
	})

	t.Run("both fields missing", func(t *testing.T) {
		t.Parallel()

		cfg := config.StepConfig{}

		err := cfg.Validate()

		require.ErrorIs(t, err, config.ErrInvalidStepConfig)
		assert.Contains(t, err.Error(), "yamlFile: Please set a YAML file")
		assert.Contains(t, err.Error(), "mapLocation: Please set the location where to find the parameters.")
	})
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OK", config.KindOK.String())
	assert.Equal(t, "WARNING", config.KindWarning.String())
	assert.Equal(t, "ERROR", config.KindError.String())
	assert.Equal(t, "UNKNOWN", config.Kind(42).String())
}
