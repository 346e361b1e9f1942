// Package macro expands $NAME and ${NAME} references inside configuration strings.
//
// Expansion is staged: each call to Replace resolves what its Resolver knows
// and leaves every other reference untouched, so a later call with a different
// Resolver can still expand it. A doubled $$ yields a literal $. For example, a file path is first expanded
// against the build environment and then against the build variables:
//
//	path := macro.Replace(macro.Replace(raw, env), variables)
package macro
