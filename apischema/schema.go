package apischema

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/drblury/respweaver/jsonutil"
)

// Name is the component name under which the envelope schema is published.
const Name = "ApiError"

const description = "Error envelope returned by the API. Every key is always present; " +
	"details, data and trace_id are null when unset. code carries the HTTP status and " +
	"timestamp is the creation time in seconds since the Unix epoch."

// Fields lists the envelope keys in wire order.
var Fields = []string{"success", "message", "code", "details", "data", "trace_id", "timestamp"}

// APIError returns a plain object schema for the error envelope. A fresh
// value is returned on every call so callers may modify it.
func APIError() *openapi3.Schema {
	success := openapi3.NewBoolSchema()
	success.Enum = []any{false}

	schema := openapi3.NewObjectSchema().
		WithProperty("success", success).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("code", openapi3.NewIntegerSchema().WithMin(0).WithMax(65535)).
		WithProperty("details", &openapi3.Schema{Nullable: true}).
		WithProperty("data", &openapi3.Schema{Nullable: true}).
		WithProperty("trace_id", openapi3.NewStringSchema().WithNullable()).
		WithProperty("timestamp", openapi3.NewIntegerSchema().WithMin(0))
	schema.Title = Name
	schema.Description = description
	schema.Required = append([]string(nil), Fields...)
	schema.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
	return schema
}

// Schemas returns a components map holding the envelope under Name.
func Schemas() openapi3.Schemas {
	return openapi3.Schemas{
		Name: openapi3.NewSchemaRef("", APIError()),
	}
}

// Validate checks an encoded envelope against the schema.
func Validate(body []byte) error {
	var value any
	if err := jsonutil.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("apischema: decode envelope: %w", err)
	}
	if err := APIError().VisitJSON(value); err != nil {
		return fmt.Errorf("apischema: envelope does not match schema: %w", err)
	}
	return nil
}

// Document renders a minimal OpenAPI 3.0 document publishing the envelope
// schema. The document is loaded back and validated before it is returned.
func Document(ctx context.Context, title, version string) ([]byte, error) {
	raw := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   title,
			"version": version,
		},
		"paths": map[string]any{},
		"components": map[string]any{
			"schemas": Schemas(),
		},
	}

	data, err := jsonutil.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("apischema: encode document: %w", err)
	}

	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("apischema: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("apischema: validate document: %w", err)
	}
	return data, nil
}
