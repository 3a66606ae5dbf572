package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/service"
)

// maxRequestBodySize bounds create and update payloads.
const maxRequestBodySize = 1 << 20 // 1 MB

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Best-effort; headers already sent.
		_ = err
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// writeDomainError maps domain errors to HTTP status codes and writes a JSON
// error response. Internal error details are not leaked to clients.
func writeDomainError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		var nfe *domain.NotFoundError
		if errors.As(err, &nfe) {
			writeError(w, http.StatusNotFound, nfe.Error())
		} else {
			writeError(w, http.StatusNotFound, "resource not found")
		}
	case errors.Is(err, domain.ErrInvalidInput):
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
		} else {
			writeError(w, http.StatusBadRequest, "invalid input")
		}
	case errors.Is(err, domain.ErrMalformedInput):
		var me *domain.MalformedInputError
		if errors.As(err, &me) {
			writeError(w, http.StatusBadRequest, me.Error())
		} else {
			writeError(w, http.StatusBadRequest, "malformed input")
		}
	case errors.Is(err, domain.ErrResolutionFailed):
		writeError(w, http.StatusInternalServerError, "reference resolution failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a size-limited request body into v. A false return means
// an error response was already written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return false
	}
	return true
}

// parsePageParams extracts page, limit, and sortBy query parameters.
// Normalization of out-of-range values happens downstream; only values that
// are not integers at all are rejected here.
func parsePageParams(r *http.Request) (service.PageParams, error) {
	var p service.PageParams

	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, domain.NewValidationError("page", "must be an integer")
		}
		p.Page = &n
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return p, domain.NewValidationError("limit", "must be an integer")
		}
		p.Limit = &n
	}
	p.SortBy = r.URL.Query().Get("sortBy")

	return p, nil
}

// countValidationFailure bumps the validation failure counter when the
// error is a validation or parse rejection.
func (s *Server) countValidationFailure(entity string, err error) {
	if s.metrics == nil {
		return
	}
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrMalformedInput) {
		s.metrics.ValidationFailures.WithLabelValues(entity).Inc()
	}
}

// countResolutionFailure records one failed reference resolution.
func (s *Server) countResolutionFailure(e *domain.ResolutionError) {
	if s.metrics == nil {
		return
	}
	s.metrics.ResolutionFailures.
		WithLabelValues(e.Entity+"."+e.Field, string(e.Reason)).
		Inc()
}

// countEntityOp bumps one of the entity operation counters.
func (s *Server) countEntityOp(counter string, entity string) {
	if s.metrics == nil {
		return
	}
	switch counter {
	case "created":
		s.metrics.EntitiesCreated.WithLabelValues(entity).Inc()
	case "updated":
		s.metrics.EntitiesUpdated.WithLabelValues(entity).Inc()
	case "deleted":
		s.metrics.EntitiesDeleted.WithLabelValues(entity).Inc()
	}
}

// resolvePosts resolves owner references for a page of posts. Items whose
// owner does not resolve keep a null owner and contribute an entry to the
// returned issue list; any other storage error aborts the listing.
func (s *Server) resolvePosts(ctx context.Context, posts []*domain.Post) ([]postResponse, []resolutionIssue, error) {
	out := make([]postResponse, len(posts))
	var issues []resolutionIssue
	for i, p := range posts {
		owner, err := s.resolver.PostOwner(ctx, p)
		if err != nil {
			var re *domain.ResolutionError
			if !errors.As(err, &re) {
				return nil, nil, err
			}
			s.countResolutionFailure(re)
			issues = append(issues, issueFromResolutionError(i, re))
			owner = nil
		}
		out[i] = domainPostToResponse(p, owner)
	}
	return out, issues, nil
}

// resolveComments resolves owner references for a page of comments with the
// same per-item failure handling as resolvePosts.
func (s *Server) resolveComments(ctx context.Context, comments []*domain.Comment) ([]commentResponse, []resolutionIssue, error) {
	out := make([]commentResponse, len(comments))
	var issues []resolutionIssue
	for i, c := range comments {
		owner, err := s.resolver.CommentOwner(ctx, c)
		if err != nil {
			var re *domain.ResolutionError
			if !errors.As(err, &re) {
				return nil, nil, err
			}
			s.countResolutionFailure(re)
			issues = append(issues, issueFromResolutionError(i, re))
			owner = nil
		}
		out[i] = domainCommentToResponse(c, owner)
	}
	return out, issues, nil
}

// resolveUsers attaches the optional location to each user. Dangling
// location references already resolve to nil, so user listings carry no
// issue entries.
func (s *Server) resolveUsers(ctx context.Context, users []*domain.User) ([]userResponse, error) {
	out := make([]userResponse, len(users))
	for i, u := range users {
		loc, err := s.resolver.UserLocation(ctx, u)
		if err != nil {
			return nil, err
		}
		out[i] = domainUserToResponse(u, loc)
	}
	return out, nil
}
