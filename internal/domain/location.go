package domain

// Location is an address record optionally referenced by users.
type Location struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Street   string `bson:"street,omitempty" json:"street,omitempty"`
	City     string `bson:"city,omitempty" json:"city,omitempty"`
	State    string `bson:"state,omitempty" json:"state,omitempty"`
	Country  string `bson:"country,omitempty" json:"country,omitempty"`
	Timezone string `bson:"timezone,omitempty" json:"timezone,omitempty"`
}

// LocationCreate is the input for creating a location. No field is
// mandatory; a location may be as sparse as the caller wants.
type LocationCreate struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// LocationPatch is a merge patch for a location. Nil fields are left untouched.
type LocationPatch struct {
	Street   *string `json:"street"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Country  *string `json:"country"`
	Timezone *string `json:"timezone"`
}
