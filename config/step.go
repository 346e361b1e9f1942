package config

import (
	"errors"
	"log/slog"
)

// minFieldLength is the length under which a field value draws a warning.
const minFieldLength = 4

// ErrInvalidStepConfig is returned when a StepConfig field fails validation.
var ErrInvalidStepConfig = errors.New("invalid step configuration")

// Kind is the outcome of a field check.
type Kind int

// Field check outcomes.
const (
	KindOK Kind = iota
	KindWarning
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "OK"
	case KindWarning:
		return "WARNING"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Validation is the result of checking one configuration field.
type Validation struct {
	Field   string
	Kind    Kind
	Message string
}

// StepConfig configures the build step.
type StepConfig struct {
	// YAMLFile is the path of the YAML file. It may reference environment and build variables.
	YAMLFile string `yaml:"yamlFile"`
	// MapLocation is the dot-separated path of the mapping holding the variables.
	MapLocation string `yaml:"mapLocation"`
}

// CheckYAMLFile validates the YAMLFile field.
func CheckYAMLFile(value string) Validation {
	return check("yamlFile", value,
		"Please set a YAML file",
		"Isn't the file too short?")
}

// CheckMapLocation validates the MapLocation field.
func CheckMapLocation(value string) Validation {
	return check("mapLocation", value,
		"Please set the location where to find the parameters.",
		"Isn't the map location too short?")
}

func check(field, value, emptyMessage, shortMessage string) Validation {
	switch {
	case value == "":
		return Validation{Field: field, Kind: KindError, Message: emptyMessage}
	case len(value) < minFieldLength:
		return Validation{Field: field, Kind: KindWarning, Message: shortMessage}
	default:
		return Validation{Field: field, Kind: KindOK, Message: ""}
	}
}

// Check runs every field check.
func (c *StepConfig) Check() []Validation {
	return []Validation{
		CheckYAMLFile(c.YAMLFile),
		CheckMapLocation(c.MapLocation),
	}
}

// Validate fails on field errors. Warnings are logged and do not fail.
func (c *StepConfig) Validate() error {
	var errs []error

	for _, result := range c.Check() {
		switch result.Kind {
		case KindError:
			errs = append(errs, errors.New(result.Field+": "+result.Message))
		case KindWarning:
			slog.Warn(result.Message, slog.String("field", result.Field))
		case KindOK:
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidStepConfig}, errs...)...)
	}

	return nil
}
