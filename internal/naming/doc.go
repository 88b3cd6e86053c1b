// Package naming provides the case conversion and sanitizing helpers used to
// turn endpoint paths and argument names into identifiers.
//
// Functions include UpperFirst, Sanitize, ToPascalCase and ToSnakeCase.
// They are used for:
//   - generator: binding identifiers, local parameter names, exported Go
//     method names and output file names
//   - CLI: deriving a default client type name from a package name
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
