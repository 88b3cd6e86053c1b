// Package generator emits typed client bindings from a parsed API reference.
//
// Each catalogued endpoint becomes one binding: an identifier derived from
// its path, a parameter list with one typed, index-suffixed parameter per
// documented argument, a result type chosen by the response's content class,
// and a documentation comment. Bindings are emitted in catalog order into a
// single file for the selected Target.
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("http-api.md"),
//	    generator.WithPackageName("kubo"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := result.WriteFiles("./kubo"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Options
//
//	WithFilePath(path)        parse the reference at path first
//	WithParsed(result)        use an existing parse result
//	WithTarget(t)             TargetGo (default) or TargetKotlin
//	WithPackageName(name)     package line of the emitted file
//	WithInterfaceName(name)   client struct or interface name
//	WithBaseURL(url)          default endpoint root for Go clients
//	WithStrictMode(enabled)   fail on malformed blocks and warnings
//	WithIncludeInfo(enabled)  record informational issues
//	WithUserAgent(ua)         User-Agent for URL sources
//	WithLogger(l)             structured logger for the run
//
// # Identifiers and Parameters
//
// The path segments after "/api/v0" form the identifier: the first segment
// as written, later ones with their first character upper-cased, hyphens
// replaced by underscores ("/api/v0/pin/remote/add" -> "pinRemoteAdd").
// Go methods export the identifier ("PinRemoteAdd"). A parameter's local
// name is its wire key plus its index ("arg0", "arg1"), so repeated keys
// stay distinct while the request still sends the original key.
//
// # Types
//
// Documented types map through a fixed table:
//
//	string          -> string   / String
//	bool            -> bool     / Boolean
//	int             -> int      / Int
//	int64, uint64   -> int64    / Long
//	array           -> []any    / Array<*>
//
// Angle brackets around a token are ignored. Any other token aborts the whole
// run with an error matching binderrors.ErrUnsupportedArgumentType; a partial
// client with guessed types is never produced.
//
// # Targets
//
// TargetGo writes a client struct whose methods POST to the endpoint with
// arguments in the query string. JSON responses decode into map[string]any,
// or []any when the documented example is an array; text/plain ones return
// io.ReadCloser. Optional arguments are pointers and are sent only when
// non-nil; the generated Ptr helper builds them from literals. The file is
// run through goimports. TargetKotlin writes a Retrofit interface of suspend
// functions returning JSONObject or ResponseBody.
package generator
