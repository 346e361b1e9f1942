// Package yamlvars extends a build environment with variables read from a YAML file.
//
// NewApp wires the pieces with Fx: the logger, the step configuration, the YAML
// parser, a local build and the step itself. Perform runs the step once and
// returns the build, whose environment then includes the extracted variables.
//
//	app := yamlvars.NewApp(
//	    yamlvars.WithStep("${WORKSPACE}/group_vars/all.yml", "deploy.staging"),
//	    yamlvars.WithVariables(map[string]string{"TARGET": "staging"}),
//	)
//	result, err := app.Perform(ctx)
package yamlvars
