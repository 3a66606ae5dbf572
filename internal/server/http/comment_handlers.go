package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opensocial/social-data-service/internal/domain"
)

// writeCommentPage resolves owners for one page of comments and writes the
// envelope.
func (s *Server) writeCommentPage(w http.ResponseWriter, r *http.Request, page *domain.Page[*domain.Comment]) {
	data, issues, err := s.resolveComments(r.Context(), page.Data)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listEnvelope[commentResponse]{
		Data:   data,
		Total:  page.Total,
		Page:   page.Page,
		Limit:  page.Limit,
		Errors: issues,
	})
}

// listComments handles GET /api/v1/comments.
func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := s.comments.List(r.Context(), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.writeCommentPage(w, r, page)
}

// listPostComments handles GET /api/v1/posts/{postID}/comments.
func (s *Server) listPostComments(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := s.comments.ListByPost(r.Context(), chi.URLParam(r, "postID"), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.writeCommentPage(w, r, page)
}

// listUserComments handles GET /api/v1/users/{userID}/comments.
func (s *Server) listUserComments(w http.ResponseWriter, r *http.Request) {
	params, err := parsePageParams(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	page, err := s.comments.ListByOwner(r.Context(), chi.URLParam(r, "userID"), params)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.writeCommentPage(w, r, page)
}

// getComment handles GET /api/v1/comments/{commentID}. The owner reference
// is mandatory for a single comment.
func (s *Server) getComment(w http.ResponseWriter, r *http.Request) {
	comment, err := s.comments.Get(r.Context(), chi.URLParam(r, "commentID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	owner, err := s.resolver.CommentOwner(r.Context(), comment)
	if err != nil {
		var re *domain.ResolutionError
		if errors.As(err, &re) {
			s.countResolutionFailure(re)
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCommentToResponse(comment, owner))
}

// createComment handles POST /api/v1/comments. Owner and post references
// are accepted as-is; broken ones surface at resolution time.
func (s *Server) createComment(w http.ResponseWriter, r *http.Request) {
	var in domain.CommentCreate
	if !decodeJSON(w, r, &in) {
		return
	}

	comment, err := s.comments.Create(r.Context(), in)
	if err != nil {
		s.countValidationFailure(domain.EntityComment, err)
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("created", domain.EntityComment)
	writeJSON(w, http.StatusCreated, domainCommentToResponse(comment, nil))
}

// updateComment handles PUT /api/v1/comments/{commentID}.
func (s *Server) updateComment(w http.ResponseWriter, r *http.Request) {
	var patch domain.CommentPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	comment, err := s.comments.Update(r.Context(), chi.URLParam(r, "commentID"), patch)
	if err != nil {
		s.countValidationFailure(domain.EntityComment, err)
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("updated", domain.EntityComment)
	writeJSON(w, http.StatusOK, domainCommentToResponse(comment, nil))
}

// deleteComment handles DELETE /api/v1/comments/{commentID}.
func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.comments.Delete(r.Context(), chi.URLParam(r, "commentID")); err != nil {
		writeDomainError(w, err)
		return
	}

	s.countEntityOp("deleted", domain.EntityComment)
	w.WriteHeader(http.StatusNoContent)
}
