package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opensocial/social-data-service/internal/domain"
)

// writePostPage resolves owners for one page of posts and writes the envelope.
func (s *Server) writePostPage(w http.ResponseWriter, r *http.Request, page *domain.Page[*domain.Post]) {
	data, issues, err := s.resolvePosts(r.Context(), page.Data)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listEnvelope[postResponse]{
		Data:   data,
		Total:  page.Total,
		Page:   page.Page,
		Limit:  page.Limit,
		Errors: issues,
	})
}

// listPosts handles GET /api/v1/posts.
func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := s.posts.List(r.Context(), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.writePostPage(w, r, page)
}

// listUserPosts handles GET /api/v1/users/{userID}/posts.
func (s *Server) listUserPosts(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := s.posts.ListByOwner(r.Context(), chi.URLParam(r, "userID"), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.writePostPage(w, r, page)
}

// listTagPosts handles GET /api/v1/tags/{tagID}/posts. The path segment is
// the tag name, matching how posts carry tags.
func (s *Server) listTagPosts(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := s.posts.ListByTag(r.Context(), chi.URLParam(r, "tagID"), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.writePostPage(w, r, page)
}

// getPost handles GET /api/v1/posts/{postID}. The owner reference is
// mandatory here: a post whose owner cannot be resolved is an error, unlike
// in listings.
func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.posts.Get(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	owner, err := s.resolver.PostOwner(r.Context(), post)
	if err != nil {
		var re *domain.ResolutionError
		if errors.As(err, &re) {
			s.countResolutionFailure(re)
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPostToResponse(post, owner))
}

// createPost handles POST /api/v1/posts.
func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var in domain.PostCreate
	if !decodeJSON(w, r, &in) {
		return
	}

	post, err := s.posts.Create(r.Context(), in)
	if err != nil {
		s.countValidationFailure(domain.EntityPost, err)
		writeDomainError(w, err)
		return
	}

	owner, err := s.resolver.PostOwner(r.Context(), post)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("created", domain.EntityPost)
	writeJSON(w, http.StatusCreated, domainPostToResponse(post, owner))
}

// updatePost handles PUT /api/v1/posts/{postID}.
func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	var patch domain.PostPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	post, err := s.posts.Update(r.Context(), chi.URLParam(r, "postID"), patch)
	if err != nil {
		s.countValidationFailure(domain.EntityPost, err)
		writeDomainError(w, err)
		return
	}

	owner, err := s.resolver.PostOwner(r.Context(), post)
	if err != nil {
		var re *domain.ResolutionError
		if errors.As(err, &re) {
			s.countResolutionFailure(re)
		}
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("updated", domain.EntityPost)
	writeJSON(w, http.StatusOK, domainPostToResponse(post, owner))
}

// deletePost handles DELETE /api/v1/posts/{postID}.
func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.Delete(r.Context(), chi.URLParam(r, "postID")); err != nil {
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("deleted", domain.EntityPost)
	w.WriteHeader(http.StatusNoContent)
}

