package handler

import "net/http"

// DocsHandler serves a pre-rendered OpenAPI document.
type DocsHandler struct {
	doc []byte
}

func NewDocsHandler(doc []byte) *DocsHandler { return &DocsHandler{doc: doc} }

// OpenAPI handles GET /docs/openapi.json
func (h *DocsHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.doc)
}
