package docs_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waskito/ocpi-versions/internal/docs"
)

func TestLoad(t *testing.T) {
	doc, err := docs.Load(context.Background(), "https://ocpi.example.com")
	require.NoError(t, err)

	for _, path := range []string{"/versions", "/versions/{version_id}", "/health"} {
		item := doc.Paths.Value(path)
		require.NotNil(t, item, "missing path %s", path)
		assert.NotNil(t, item.Get, "path %s has no GET", path)
	}
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://ocpi.example.com", doc.Servers[0].URL)
}

func TestJSON(t *testing.T) {
	b, err := docs.JSON(context.Background(), "https://ocpi.example.com")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, "3.0.3", body["openapi"])
	assert.Contains(t, body, "paths")
}
