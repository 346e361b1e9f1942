// Package config provides the configuration surface of the build step.
//
// StepConfig holds the two fields a job configures: the YAML file and the
// dot-separated location of the mapping inside it. CheckYAMLFile and
// CheckMapLocation give field-level feedback (OK, warning, error) the way a job
// configuration form would.
//
// Loading follows four extension points:
//   - Parser: deserializes raw data into a config struct, with path navigation
//   - DataFetcher: retrieves raw config data
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Example
//
// Loading the step section of a job definition:
//
//	provider := config.Provider(&config.StepConfig{}, "job.steps.yamlvars")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config
