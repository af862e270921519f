package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mzielinski/travel-agency/internal/domain"
	"github.com/mzielinski/travel-agency/internal/service"
)

// assignRequest is the JSON payload of POST /api/trips/{idTrip}/clients.
type assignRequest struct {
	TripID      int    `json:"idTrip"`
	TripName    string `json:"tripName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Telephone   string `json:"telephone"`
	Pesel       string `json:"pesel"`
	PaymentDate string `json:"paymentDate,omitempty"`
}

// AssignClientToTrip handles POST /api/trips/{idTrip}/clients.
func (s *Server) AssignClientToTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.Atoi(chi.URLParam(r, "idTrip"))
	if err != nil {
		writeBadRequest(w, "idTrip must be an integer")
		return
	}

	var body assignRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	req := service.AssignRequest{
		TripID:      body.TripID,
		TripName:    body.TripName,
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		Telephone:   body.Telephone,
		Pesel:       body.Pesel,
		PaymentDate: body.PaymentDate,
	}

	if err := s.bookings.AssignClientToTrip(r.Context(), tripID, req); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, fmt.Sprintf("trip %d not found", tripID))
		case errors.Is(err, domain.ErrInvalidState):
			writeInvalidState(w, err)
		default:
			writeInternal(w, r, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "client assigned to trip"})
}
