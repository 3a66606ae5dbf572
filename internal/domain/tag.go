package domain

// Tag is a standalone label entity. Posts hold tag names by value, not by
// id, so tags participate in no declared relationship.
type Tag struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}

// TagCreate is the input for creating a tag.
type TagCreate struct {
	Name string `json:"name" validate:"required"`
}

// TagPatch is a merge patch for a tag.
type TagPatch struct {
	Name *string `json:"name"`
}
