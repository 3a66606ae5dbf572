package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opensocial/social-data-service/internal/domain"
)

// listTags handles GET /api/v1/tags.
func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := s.tags.List(r.Context(), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listEnvelope[*domain.Tag]{
		Data:  page.Data,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// getTag handles GET /api/v1/tags/{tagID}.
func (s *Server) getTag(w http.ResponseWriter, r *http.Request) {
	tag, err := s.tags.Get(r.Context(), chi.URLParam(r, "tagID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

// createTag handles POST /api/v1/tags.
func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var in domain.TagCreate
	if !decodeJSON(w, r, &in) {
		return
	}

	tag, err := s.tags.Create(r.Context(), in)
	if err != nil {
		s.countValidationFailure(domain.EntityTag, err)
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("created", domain.EntityTag)
	writeJSON(w, http.StatusCreated, tag)
}

// updateTag handles PUT /api/v1/tags/{tagID}.
func (s *Server) updateTag(w http.ResponseWriter, r *http.Request) {
	var patch domain.TagPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	tag, err := s.tags.Update(r.Context(), chi.URLParam(r, "tagID"), patch)
	if err != nil {
		s.countValidationFailure(domain.EntityTag, err)
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("updated", domain.EntityTag)
	writeJSON(w, http.StatusOK, tag)
}

// deleteTag handles DELETE /api/v1/tags/{tagID}.
func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	if err := s.tags.Delete(r.Context(), chi.URLParam(r, "tagID")); err != nil {
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("deleted", domain.EntityTag)
	w.WriteHeader(http.StatusNoContent)
}
