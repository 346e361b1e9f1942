package yamlvars_test

import (
	"bytes"
	"testing"

	"github.com/0xalexb/yamlvars"
	"github.com/0xalexb/yamlvars/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "warn", "error", ""} {
		t.Run("level "+level, func(t *testing.T) {
			t.Parallel()

			var opts yamlvars.Options

			yamlvars.WithLogLevel(level)(&opts)

			require.Equal(t, level, opts.LogLevel)
		})
	}
}

func TestWithLogFormatAndOutput(t *testing.T) {
	t.Parallel()

	var (
		opts yamlvars.Options
		buf  bytes.Buffer
	)

	yamlvars.WithLogFormat("text")(&opts)
	yamlvars.WithLogOutput(&buf)(&opts)

	require.Equal(t, "text", opts.LogFormat)
	require.Same(t, &buf, opts.LogOutput)
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts yamlvars.Options

	yamlvars.WithModules(fx.Module("test1"))(&opts)
	require.Len(t, opts.Modules, 1)

	yamlvars.WithModules(fx.Module("test2"), fx.Module("test3"))(&opts)
	require.Len(t, opts.Modules, 3)
}

func TestWithStep(t *testing.T) {
	t.Parallel()

	var opts yamlvars.Options

	yamlvars.WithStep("vars.yml", "deploy.staging")(&opts)

	require.Equal(t, config.StepConfig{YAMLFile: "vars.yml", MapLocation: "deploy.staging"}, opts.Step)
}

func TestWithJobFile(t *testing.T) {
	t.Parallel()

	var opts yamlvars.Options

	yamlvars.WithJobFile("job.yml", "job.steps.yamlvars")(&opts)

	require.Equal(t, "job.yml", opts.JobFile)
	require.Equal(t, "job.steps.yamlvars", opts.JobPath)
}

func TestWithVariables_Merges(t *testing.T) {
	t.Parallel()

	var opts yamlvars.Options

	source := map[string]string{"A": "1", "B": "2"}

	yamlvars.WithVariables(source)(&opts)
	yamlvars.WithVariables(map[string]string{"B": "3"})(&opts)

	require.Equal(t, map[string]string{"A": "1", "B": "3"}, opts.Variables)
	require.Equal(t, "2", source["B"], "source map must not be modified")
}

func TestWithEnviron(t *testing.T) {
	t.Parallel()

	var opts yamlvars.Options

	yamlvars.WithEnviron([]string{"A=1"})(&opts)

	require.Equal(t, []string{"A=1"}, opts.Environ)
}
