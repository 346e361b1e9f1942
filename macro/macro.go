package macro

import "regexp"

// variablePattern matches $NAME, ${NAME} and the $$ escape. Dots are only allowed inside braces.
var variablePattern = regexp.MustCompile(`\$([A-Za-z0-9_]+|\{[A-Za-z0-9_.]+\}|\$)`)

// Resolver looks up the value of a named variable.
type Resolver interface {
	Resolve(name string) (string, bool)
}

// MapResolver resolves variables from a plain map.
type MapResolver map[string]string

// Resolve returns the value stored under name.
func (m MapResolver) Resolve(name string) (string, bool) {
	value, ok := m[name]

	return value, ok
}

// Replace substitutes every reference that resolver can resolve and turns $$ into $.
// Unresolved references are kept verbatim. Substituted values are not rescanned.
func Replace(s string, resolver Resolver) string {
	if resolver == nil || s == "" {
		return s
	}

	return variablePattern.ReplaceAllStringFunc(s, func(match string) string {
		if match == "$$" {
			return "$"
		}

		name := variableName(match)

		value, ok := resolver.Resolve(name)
		if !ok {
			return match
		}

		return value
	})
}

func variableName(match string) string {
	name := match[1:]
	if name[0] == '{' {
		name = name[1 : len(name)-1]
	}

	return name
}
