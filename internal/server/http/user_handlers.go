package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opensocial/social-data-service/internal/domain"
)

// listUsers handles GET /api/v1/users.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := s.users.List(r.Context(), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	data, err := s.resolveUsers(r.Context(), page.Data)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listEnvelope[userResponse]{
		Data:  data,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// getUser handles GET /api/v1/users/{userID}.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	loc, err := s.resolver.UserLocation(r.Context(), user)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToResponse(user, loc))
}

// createUser handles POST /api/v1/users.
func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var in domain.UserCreate
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := s.users.Create(r.Context(), in)
	if err != nil {
		s.countValidationFailure(domain.EntityUser, err)
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("created", domain.EntityUser)

	loc, err := s.resolver.UserLocation(r.Context(), user)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainUserToResponse(user, loc))
}

// updateUser handles PUT /api/v1/users/{userID}.
func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var patch domain.UserPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	user, err := s.users.Update(r.Context(), chi.URLParam(r, "userID"), patch)
	if err != nil {
		s.countValidationFailure(domain.EntityUser, err)
		writeDomainError(w, err)
		return
	}

	loc, err := s.resolver.UserLocation(r.Context(), user)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("updated", domain.EntityUser)
	writeJSON(w, http.StatusOK, domainUserToResponse(user, loc))
}

// deleteUser handles DELETE /api/v1/users/{userID}.
func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("deleted", domain.EntityUser)
	w.WriteHeader(http.StatusNoContent)
}
