package template_engine

import "embed"

//go:embed templates
var TemplateFS embed.FS

var TEMPLATES = struct {
	NAMESPACES_GO TemplateRef
}{
	NAMESPACES_GO: TemplateRef{Path: "namespaces.go.tmpl"},
}
