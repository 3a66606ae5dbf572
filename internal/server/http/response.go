package httpserver

import (
	"github.com/opensocial/social-data-service/internal/domain"
)

// listEnvelope is the uniform listing response shape. Errors carries
// per-item resolution failures; it is omitted when every item resolved.
type listEnvelope[T any] struct {
	Data   []T               `json:"data"`
	Total  int64             `json:"total"`
	Page   int               `json:"page"`
	Limit  int               `json:"limit"`
	Errors []resolutionIssue `json:"errors,omitempty"`
}

// resolutionIssue describes one reference that did not resolve inside a
// listing. Index positions the affected item within Data.
type resolutionIssue struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	RefID  string `json:"refId,omitempty"`
	Reason string `json:"reason"`
}

// ownerPreview is the embedded shape of a resolved owner reference.
type ownerPreview struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Picture   string `json:"picture,omitempty"`
}

// postResponse is a post with its owner reference resolved. Owner is null
// when the reference did not resolve; listings report why in the envelope
// errors list.
type postResponse struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Image       string        `json:"image,omitempty"`
	Likes       int           `json:"likes"`
	Tags        []string      `json:"tags"`
	PublishDate string        `json:"publishDate"`
	Owner       *ownerPreview `json:"owner"`
}

// commentResponse is a comment with its owner reference resolved. The post
// reference stays an id; clients follow it when they need the post body.
type commentResponse struct {
	ID          string        `json:"id"`
	Message     string        `json:"message"`
	PostID      string        `json:"post"`
	PublishDate string        `json:"publishDate"`
	Owner       *ownerPreview `json:"owner"`
}

// userResponse is a user with the optional location reference resolved.
// Location is null when the user has no location or the reference dangles.
type userResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title,omitempty"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	Gender       string           `json:"gender,omitempty"`
	Email        string           `json:"email"`
	DateOfBirth  string           `json:"dateOfBirth,omitempty"`
	RegisterDate string           `json:"registerDate"`
	Phone        string           `json:"phone,omitempty"`
	Picture      string           `json:"picture,omitempty"`
	Location     *domain.Location `json:"location"`
}

func domainUserToPreview(u *domain.User) *ownerPreview {
	if u == nil {
		return nil
	}
	return &ownerPreview{
		ID:        u.ID,
		Title:     u.Title,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Picture:   u.Picture,
	}
}

func domainUserToResponse(u *domain.User, loc *domain.Location) userResponse {
	return userResponse{
		ID:           u.ID,
		Title:        u.Title,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Gender:       u.Gender,
		Email:        u.Email,
		DateOfBirth:  u.DateOfBirth,
		RegisterDate: u.RegisterDate,
		Phone:        u.Phone,
		Picture:      u.Picture,
		Location:     loc,
	}
}

func domainPostToResponse(p *domain.Post, owner *domain.User) postResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return postResponse{
		ID:          p.ID,
		Text:        p.Text,
		Image:       p.Image,
		Likes:       p.Likes,
		Tags:        tags,
		PublishDate: p.PublishDate,
		Owner:       domainUserToPreview(owner),
	}
}

func domainCommentToResponse(c *domain.Comment, owner *domain.User) commentResponse {
	return commentResponse{
		ID:          c.ID,
		Message:     c.Message,
		PostID:      c.PostID,
		PublishDate: c.PublishDate,
		Owner:       domainUserToPreview(owner),
	}
}

func issueFromResolutionError(index int, e *domain.ResolutionError) resolutionIssue {
	return resolutionIssue{
		Index:  index,
		Field:  e.Field,
		RefID:  e.RefID,
		Reason: string(e.Reason),
	}
}
