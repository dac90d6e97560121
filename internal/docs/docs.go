// Package docs serves the OpenAPI description of the HTTP surface.
package docs

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded OpenAPI document and sets its
// single server entry to baseURL.
func Load(ctx context.Context, baseURL string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	doc.Servers = openapi3.Servers{{URL: baseURL}}
	return doc, nil
}

// JSON loads the document and renders it as indented JSON.
func JSON(ctx context.Context, baseURL string) ([]byte, error) {
	doc, err := Load(ctx, baseURL)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	return b, nil
}
