// Package llm - schema.go renders the JSON output contract embedded in prompts.
package llm

import (
	"fmt"
	"strings"
)

// OutputSchema defines the JSON object a prompt asks the model to return.
type OutputSchema struct {
	Name   string        // Schema name (e.g., "Diagnosis")
	Fields []SchemaField // Expected output fields, in prompt order
}

// SchemaField defines a single field in the expected output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint shown to the model, e.g. "string or null"
	Description string // Optional note for the model
}

// FormatOutputSchema renders the schema as the JSON skeleton shown to the model:
//
//	{
//	  "field": (type),
//	  ...
//	}
func FormatOutputSchema(schema OutputSchema) string {
	var sb strings.Builder

	sb.WriteString("{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": (%s)", field.Name, typeHint))
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")

	return sb.String()
}

// FieldNames returns the schema's field names in order.
func (s OutputSchema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		names = append(names, field.Name)
	}
	return names
}
