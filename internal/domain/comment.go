package domain

// Comment is a message attached to a post by a user. Both references are
// mandatory when resolved but are not verified on write.
type Comment struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Message     string `bson:"message" json:"message"`
	OwnerID     string `bson:"ownerId" json:"ownerId"`
	PostID      string `bson:"postId" json:"postId"`
	PublishDate string `bson:"publishDate" json:"publishDate"`
}

// CommentCreate is the input for creating a comment. PublishDate is
// assigned server-side.
type CommentCreate struct {
	Message string `json:"message" validate:"required"`
	OwnerID string `json:"ownerId" validate:"required"`
	PostID  string `json:"postId" validate:"required"`
}

// CommentPatch is a merge patch for a comment. Nil fields are left
// untouched; the publish date is never mutated by update.
type CommentPatch struct {
	Message *string `json:"message"`
	OwnerID *string `json:"ownerId"`
	PostID  *string `json:"postId"`
}
