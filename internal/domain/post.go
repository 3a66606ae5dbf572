package domain

// Post is a published item owned by a user. OwnerID must reference an
// existing user at creation time; afterwards the owner may be deleted
// independently, leaving a dangling reference.
type Post struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Text        string   `bson:"text" json:"text"`
	Image       string   `bson:"image,omitempty" json:"image,omitempty"`
	Tags        []string `bson:"tags,omitempty" json:"tags"`
	OwnerID     string   `bson:"ownerId" json:"ownerId"`
	PublishDate string   `bson:"publishDate" json:"publishDate"`
	Likes       int      `bson:"likes" json:"likes"`
}

// PostCreate is the input for creating a post. PublishDate and Likes are
// assigned server-side: the publish date is stamped at creation and Likes
// always starts at zero.
type PostCreate struct {
	Text    string   `json:"text" validate:"required"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
	OwnerID string   `json:"ownerId" validate:"required"`
}

// PostPatch is a merge patch for a post. Nil fields are left untouched.
// PublishDate and Likes are never mutated by update.
type PostPatch struct {
	Text    *string   `json:"text"`
	Image   *string   `json:"image"`
	Tags    *[]string `json:"tags"`
	OwnerID *string   `json:"ownerId"`
}
