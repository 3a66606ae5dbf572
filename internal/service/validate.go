package service

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/opensocial/social-data-service/internal/domain"
)

// validate is shared across services; it is read-only after init and safe
// for concurrent use.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the API-facing json field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// checkInput validates a create input and converts the first violated
// constraint into a domain.ValidationError. Later violations are dropped:
// input validation fails fast.
func checkInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(fe.Field(), "is required")
	case "email":
		return domain.NewValidationError(fe.Field(), "must be a valid email address")
	default:
		return domain.NewValidationError(fe.Field(), "is invalid")
	}
}

// dateOfBirthLayouts are the ISO-8601 shapes accepted for dateOfBirth input.
var dateOfBirthLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// checkDateOfBirth verifies an optional dateOfBirth value parses as
// ISO-8601. Empty input is valid: the field is optional.
func checkDateOfBirth(value string) error {
	if value == "" {
		return nil
	}
	for _, layout := range dateOfBirthLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return domain.NewMalformedInputError("dateOfBirth", "must be an ISO-8601 date")
}

// nowTimestamp returns the server-assigned creation timestamp. All
// registerDate and publishDate values use this one format.
func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
