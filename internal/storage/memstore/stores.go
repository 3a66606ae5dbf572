package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

// NewStores creates an in-memory store bundle with the sortable and
// filterable fields each entity supports.
func NewStores() *storage.Stores {
	return &storage.Stores{
		Users: NewCollection(Options[domain.User]{
			Entity: domain.EntityUser,
			GetID:  func(u *domain.User) string { return u.ID },
			SetID:  func(u *domain.User, id string) { u.ID = id },
			SortFields: map[string]func(a, b *domain.User) int{
				"registerDate": func(a, b *domain.User) int { return strings.Compare(a.RegisterDate, b.RegisterDate) },
				"firstName":    func(a, b *domain.User) int { return strings.Compare(a.FirstName, b.FirstName) },
				"lastName":     func(a, b *domain.User) int { return strings.Compare(a.LastName, b.LastName) },
				"email":        func(a, b *domain.User) int { return strings.Compare(a.Email, b.Email) },
			},
			MatchFields: map[string]func(*domain.User, any) bool{
				"locationId": func(u *domain.User, v any) bool { return u.LocationID == v },
			},
		}),
		Posts: NewCollection(Options[domain.Post]{
			Entity: domain.EntityPost,
			GetID:  func(p *domain.Post) string { return p.ID },
			SetID:  func(p *domain.Post, id string) { p.ID = id },
			SortFields: map[string]func(a, b *domain.Post) int{
				"publishDate": func(a, b *domain.Post) int { return strings.Compare(a.PublishDate, b.PublishDate) },
				"likes":       func(a, b *domain.Post) int { return cmp.Compare(a.Likes, b.Likes) },
			},
			MatchFields: map[string]func(*domain.Post, any) bool{
				storage.FieldOwnerID: func(p *domain.Post, v any) bool { return p.OwnerID == v },
				storage.FieldTags: func(p *domain.Post, v any) bool {
					tag, ok := v.(string)
					return ok && slices.Contains(p.Tags, tag)
				},
			},
		}),
		Comments: NewCollection(Options[domain.Comment]{
			Entity: domain.EntityComment,
			GetID:  func(c *domain.Comment) string { return c.ID },
			SetID:  func(c *domain.Comment, id string) { c.ID = id },
			SortFields: map[string]func(a, b *domain.Comment) int{
				"publishDate": func(a, b *domain.Comment) int { return strings.Compare(a.PublishDate, b.PublishDate) },
			},
			MatchFields: map[string]func(*domain.Comment, any) bool{
				storage.FieldOwnerID: func(c *domain.Comment, v any) bool { return c.OwnerID == v },
				storage.FieldPostID:  func(c *domain.Comment, v any) bool { return c.PostID == v },
			},
		}),
		Tags: NewCollection(Options[domain.Tag]{
			Entity: domain.EntityTag,
			GetID:  func(t *domain.Tag) string { return t.ID },
			SetID:  func(t *domain.Tag, id string) { t.ID = id },
			SortFields: map[string]func(a, b *domain.Tag) int{
				"name": func(a, b *domain.Tag) int { return strings.Compare(a.Name, b.Name) },
			},
			MatchFields: map[string]func(*domain.Tag, any) bool{
				"name": func(t *domain.Tag, v any) bool { return t.Name == v },
			},
		}),
		Locations: NewCollection(Options[domain.Location]{
			Entity: domain.EntityLocation,
			GetID:  func(l *domain.Location) string { return l.ID },
			SetID:  func(l *domain.Location, id string) { l.ID = id },
			SortFields: map[string]func(a, b *domain.Location) int{
				"city":    func(a, b *domain.Location) int { return strings.Compare(a.City, b.City) },
				"country": func(a, b *domain.Location) int { return strings.Compare(a.Country, b.Country) },
			},
			MatchFields: map[string]func(*domain.Location, any) bool{
				"country": func(l *domain.Location, v any) bool { return l.Country == v },
			},
		}),
	}
}

// Backend is the no-op lifecycle handle for the in-memory backend.
type Backend struct{}

// Ping always succeeds.
func (Backend) Ping(_ context.Context) error { return nil }

// Close always succeeds.
func (Backend) Close(_ context.Context) error { return nil }
