// Package domain contains the entities served by the social data API and
// the error kinds shared across the storage, service, and transport layers.
//
// All entity identifiers are opaque strings assigned by the storage layer on
// first save and never reassigned. Relationship fields hold references by id,
// not embedded copies; a referenced entity may be deleted independently, so
// dangling references are detected at resolution time rather than on write.
package domain

// Entity names used in errors and the relationship table.
const (
	EntityUser     = "user"
	EntityPost     = "post"
	EntityComment  = "comment"
	EntityTag      = "tag"
	EntityLocation = "location"
)

// User is an account in the social dataset. LocationID is an optional
// reference to a Location and may be absent or dangling.
type User struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Title        string `bson:"title,omitempty" json:"title,omitempty"`
	FirstName    string `bson:"firstName" json:"firstName"`
	LastName     string `bson:"lastName" json:"lastName"`
	Gender       string `bson:"gender,omitempty" json:"gender,omitempty"`
	Email        string `bson:"email" json:"email"`
	Password     string `bson:"password" json:"-"`
	DateOfBirth  string `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	RegisterDate string `bson:"registerDate" json:"registerDate"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Picture      string `bson:"picture,omitempty" json:"picture,omitempty"`
	LocationID   string `bson:"locationId,omitempty" json:"locationId,omitempty"`
}

// UserCreate is the input for creating a user. RegisterDate is always
// assigned server-side; any client-supplied value is ignored.
type UserCreate struct {
	Title       string `json:"title" validate:"omitempty"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Gender      string `json:"gender"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DateOfBirth string `json:"dateOfBirth"`
	Phone       string `json:"phone"`
	Picture     string `json:"picture"`
	LocationID  string `json:"locationId"`
}

// UserPatch is a merge patch for a user. Nil fields are left untouched;
// present fields overwrite the stored value, even with a blank string.
// Email, password, and the register date are not updatable.
type UserPatch struct {
	Title       *string `json:"title"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"dateOfBirth"`
	Phone       *string `json:"phone"`
	Picture     *string `json:"picture"`
	LocationID  *string `json:"locationId"`
}
