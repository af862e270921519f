package handler

import (
	"net/http"

	"github.com/mzielinski/travel-agency/spec"
)

// GetOpenAPI handles GET /openapi.yaml.
// Serving the embedded document means the spec and the running code are
// always shipped together.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
