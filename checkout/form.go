package checkout

import (
	"errors"
	"regexp"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	validatorv10 "github.com/go-playground/validator/v10"
)

// ShippingForm is the structured address a shopper submits at checkout.
type ShippingForm struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"required,phone"`
	Address    string `json:"address" validate:"required,min=5,max=500"`
	City       string `json:"city" validate:"required,min=2,max=100"`
	State      string `json:"state" validate:"required,min=2,max=100"`
	PostalCode string `json:"postal_code" validate:"required,min=3,max=20"`
}

// Permissive: digits plus common punctuation, 5-20 chars.
var phonePattern = regexp.MustCompile(`^[0-9+\-() ]{5,20}$`)

var formValidator = newFormValidator()

func newFormValidator() *validatorv10.Validate {
	v := validatorv10.New()
	// A nil error from RegisterValidation is guaranteed for a non-empty tag.
	_ = v.RegisterValidation("phone", func(fl validatorv10.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// Friendly message per (field, failed rule). Only the first failure is
// surfaced; validation is fail-fast with a single message.
var formMessages = map[string]string{
	"FirstName":  "Please enter a valid first name.",
	"LastName":   "Please enter a valid last name.",
	"Email":      "Please enter a valid email address.",
	"Phone":      "Please enter a valid phone number.",
	"Address":    "Please enter a complete street address.",
	"City":       "Please enter a valid city.",
	"State":      "Please enter a valid state or province.",
	"PostalCode": "Please enter a valid postal code.",
}

// ValidationError is a client-detectable form failure; no remote call was
// issued. Its message is already user-facing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks the form's structural rules and returns the first
// violation as a *ValidationError, or nil when the form is valid.
func (f ShippingForm) Validate() error {
	err := formValidator.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validatorv10.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].StructField()
		if msg, ok := formMessages[field]; ok {
			return &ValidationError{Field: field, Message: msg}
		}
	}
	return &ValidationError{Message: "Please check your shipping details and try again."}
}

// ShippingAddress converts the validated form into the snapshot embedded in
// the order.
func (f ShippingForm) ShippingAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		Phone:      f.Phone,
		Address:    f.Address,
		City:       f.City,
		State:      f.State,
		PostalCode: f.PostalCode,
	}
}
