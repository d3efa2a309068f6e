package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/schemarepl/internal/presentation/graph"
	"github.com/aretw0/schemarepl/pkg/schema"
)

// ValidateTemplate parses text and lists its fields on w.
// A malformed template returns the *schema.SchemaError unchanged.
func ValidateTemplate(w io.Writer, text string) error {
	t, err := schema.ParseTemplate(text)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✓ template is valid (%d fields)\n", len(t.Fields))
	for i, f := range t.Fields {
		fmt.Fprintf(w, "  %d. %s\n", i, f)
	}
	return nil
}

// DiagramTemplate parses text and writes it as a Mermaid diagram.
func DiagramTemplate(w io.Writer, entity, text string) error {
	t, err := schema.ParseTemplate(text)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(entity, t))
	return err
}
