package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opensocial/social-data-service/internal/domain"
)

// listLocations handles GET /api/v1/locations.
func (s *Server) listLocations(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := s.locations.List(r.Context(), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listEnvelope[*domain.Location]{
		Data:  page.Data,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// getLocation handles GET /api/v1/locations/{locationID}.
func (s *Server) getLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := s.locations.Get(r.Context(), chi.URLParam(r, "locationID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// createLocation handles POST /api/v1/locations.
func (s *Server) createLocation(w http.ResponseWriter, r *http.Request) {
	var in domain.LocationCreate
	if !decodeJSON(w, r, &in) {
		return
	}

	loc, err := s.locations.Create(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("created", domain.EntityLocation)
	writeJSON(w, http.StatusCreated, loc)
}

// updateLocation handles PUT /api/v1/locations/{locationID}.
func (s *Server) updateLocation(w http.ResponseWriter, r *http.Request) {
	var patch domain.LocationPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	loc, err := s.locations.Update(r.Context(), chi.URLParam(r, "locationID"), patch)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("updated", domain.EntityLocation)
	writeJSON(w, http.StatusOK, loc)
}

// deleteLocation handles DELETE /api/v1/locations/{locationID}.
func (s *Server) deleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.locations.Delete(r.Context(), chi.URLParam(r, "locationID")); err != nil {
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("deleted", domain.EntityLocation)
	w.WriteHeader(http.StatusNoContent)
}
