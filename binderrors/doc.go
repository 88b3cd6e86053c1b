// Package binderrors provides structured error types for mdbind.
//
// Import path: github.com/erraggy/mdbind/binderrors
//
// The types separate the two failure scopes of a run. Block failures
// ([BlockError]) are local to one endpoint block: the parser records them in
// its rejection log and keeps scanning. Type failures ([TypeError]) are
// global: the generator aborts and returns no output.
//
// # Error Types
//
//   - [BlockError]: an endpoint block was malformed or its response unparsable
//   - [TypeError]: an argument type has no mapping in the generator's lookup table
//   - [SourceError]: the markdown source could not be read or fetched
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrMalformedBlock]: matches a [BlockError] of kind [KindMalformedBlock]
//   - [ErrUnparsableResponse]: matches a [BlockError] of kind [KindUnparsableResponse]
//   - [ErrUnsupportedRequestBody]: reason attached to request-body rejections
//   - [ErrUnsupportedArgumentType]: matches any [TypeError]
//   - [ErrSource]: matches any [SourceError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage
//
//	result, err := generator.GenerateWithOptions(generator.WithFilePath("api.md"))
//	if err != nil {
//	    var typeErr *binderrors.TypeError
//	    if errors.As(err, &typeErr) {
//	        fmt.Printf("%s: argument %q has unknown type %q\n",
//	            typeErr.Path, typeErr.Argument, typeErr.DocType)
//	    }
//	}
package binderrors
