package generator

import (
	"embed"
	"strconv"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates *template.Template

func init() {
	var err error
	templates, err = template.New("").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
}

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"quote": strconv.Quote,

	// Go target
	"goDoc":    goDoc,
	"goMethod": func(b Binding) string { return goMethodName(b.Identifier) },
	"goParams": goParams,
	"goReturn": goReturnType,
	"goRaw":    func(b Binding) bool { return b.Return == ReturnByteStream },
	"goQuery":  goQueryStatement,

	// Kotlin target
	"kotlinDoc":    kotlinDoc,
	"kotlinName":   func(b Binding) string { return kotlinFunctionName(b.Identifier) },
	"kotlinParams": kotlinParams,
	"kotlinReturn": kotlinReturnType,
	"kotlinString": kotlinString,
}

// executeTemplate executes a template by name and returns the raw output.
// Formatting is left to the caller because only the Go target is formatted.
func executeTemplate(name string, data *fileData) ([]byte, error) {
	buf := getRenderBuffer(len(data.Bindings))
	defer putRenderBuffer(buf, len(data.Bindings))

	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
