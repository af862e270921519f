package handler

import (
	"fmt"
	"net/http"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/mzielinski/travel-agency/internal/domain"
)

// ListTrips handles GET /api/trips.
// Supports ?page= and ?pageSize= query parameters (defaults: page=1, pageSize=10).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeBadRequest(w, "page must be a positive integer")
		return
	}
	pageSize, err := queryInt(r, "pageSize")
	if err != nil {
		writeBadRequest(w, "pageSize must be a positive integer")
		return
	}

	result, err := s.trips.List(r.Context(), domain.NewPaginationParams(page, pageSize))
	if err != nil {
		writeInternal(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripPageToResponse(result))
}

// queryInt parses an optional positive integer query parameter.
// A missing parameter returns (nil, nil); a present but non-positive or
// non-numeric value returns an error.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

// --- response shapes --------------------------------------------------------

// tripPageResponse mirrors domain.TripPage on the wire.
type tripPageResponse struct {
	PageNum  int            `json:"pageNum"`
	PageSize int            `json:"pageSize"`
	AllPages int            `json:"allPages"`
	Trips    []tripResponse `json:"trips"`
}

// tripResponse is one trip aggregate in the listing. The dates use the
// openapi date type so they marshal as "yyyy-MM-dd" and stay null when unset.
type tripResponse struct {
	ID          int                  `json:"idTrip"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	DateFrom    *openapi_types.Date  `json:"dateFrom"`
	DateTo      *openapi_types.Date  `json:"dateTo"`
	MaxPeople   int                  `json:"maxPeople"`
	Countries   []countryResponse    `json:"countries"`
	Clients     []clientNameResponse `json:"clients"`
}

type countryResponse struct {
	Name string `json:"name"`
}

type clientNameResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// tripPageToResponse converts a domain.TripPage into its JSON shape.
func tripPageToResponse(p domain.TripPage) tripPageResponse {
	trips := make([]tripResponse, len(p.Trips))
	for i, t := range p.Trips {
		trips[i] = tripToResponse(t)
	}
	return tripPageResponse{
		PageNum:  p.PageNum,
		PageSize: p.PageSize,
		AllPages: p.AllPages,
		Trips:    trips,
	}
}

// tripToResponse converts one domain.Trip aggregate. Countries and Clients
// are always arrays in the response, never null, so clients can range freely.
func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		MaxPeople:   t.MaxPeople,
		Countries:   []countryResponse{},
		Clients:     []clientNameResponse{},
	}
	if t.DateFrom != nil {
		d := openapi_types.Date{Time: *t.DateFrom}
		resp.DateFrom = &d
	}
	if t.DateTo != nil {
		d := openapi_types.Date{Time: *t.DateTo}
		resp.DateTo = &d
	}
	for _, c := range t.Countries {
		resp.Countries = append(resp.Countries, countryResponse{Name: c})
	}
	for _, c := range t.Clients {
		resp.Clients = append(resp.Clients, clientNameResponse{FirstName: c.FirstName, LastName: c.LastName})
	}
	return resp
}
