package envvars

// ActionDisplayName is the name under which the contribution is shown by hosts.
const ActionDisplayName = "ExtendedYamlParameterAction"

// Contributor mutates an Environment when the host asks for it.
type Contributor interface {
	Apply(env Environment)
}

// Action contributes extended parameters to a build environment.
// It has no navigable UI: IconFileName and URLName are empty.
type Action struct {
	params *Parameters
}

// NewAction creates an Action for params. A nil params contributes nothing.
func NewAction(params *Parameters) *Action {
	return &Action{params: params}
}

// DisplayName returns ActionDisplayName.
func (a *Action) DisplayName() string {
	return ActionDisplayName
}

// IconFileName returns an empty string.
func (a *Action) IconFileName() string {
	return ""
}

// URLName returns an empty string.
func (a *Action) URLName() string {
	return ""
}

// Parameters returns the parameters the action contributes.
func (a *Action) Parameters() *Parameters {
	return a.params
}

// Apply writes every parameter into env, overwriting existing keys.
// Applying the same action twice leaves env unchanged the second time.
func (a *Action) Apply(env Environment) {
	if env == nil || a.params == nil {
		return
	}

	for key, value := range a.params.All() {
		env.Set(key, value)
	}
}
