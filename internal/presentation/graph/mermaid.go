package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/schemarepl/pkg/schema"
)

// GenerateMermaid produces a Mermaid erDiagram for a parsed template.
// The record is drawn as a single entity named entity, one attribute per
// field in declaration order. String fields carry their max length as the
// attribute comment.
func GenerateMermaid(entity string, t schema.Template) string {
	var sb strings.Builder
	sb.WriteString("erDiagram\n")

	name := strings.ToUpper(sanitizeMermaidID(entity))
	if name == "" {
		name = "RECORD"
	}
	sb.WriteString(fmt.Sprintf("    %s {\n", name))
	for _, f := range t.Fields {
		line := fmt.Sprintf("        %s %s", f.Kind, sanitizeMermaidID(f.Name))
		if f.Kind == schema.KindString {
			line += fmt.Sprintf(" \"max %d\"", f.MaxLength)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("    }\n")

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
