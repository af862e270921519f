package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mzielinski/travel-agency/internal/domain"
)

// DeleteClient handles DELETE /api/clients/{idClient}.
func (s *Server) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "idClient"))
	if err != nil {
		writeBadRequest(w, "idClient must be an integer")
		return
	}

	if err := s.clients.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, fmt.Sprintf("client %d not found", id))
		case errors.Is(err, domain.ErrInvalidState):
			writeInvalidState(w, err)
		default:
			writeInternal(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("client %d has been deleted", id)})
}
