package checkout

import (
	"errors"
	"strings"
	"testing"
)

func validForm() ShippingForm {
	return ShippingForm{
		FirstName:  "Ayesha",
		LastName:   "Khan",
		Email:      "ayesha@example.com",
		Phone:      "+92 300 1234567",
		Address:    "House 12, Street 4, DHA Phase 5",
		City:       "Lahore",
		State:      "Punjab",
		PostalCode: "54000",
	}
}

func TestValidFormPasses(t *testing.T) {
	if err := validForm().Validate(); err != nil {
		t.Errorf("Expected valid form to pass, got: %v", err)
	}
}

func TestFormValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShippingForm)
		wantMsg string
	}{
		{"missing first name", func(f *ShippingForm) { f.FirstName = "" }, "first name"},
		{"first name too long", func(f *ShippingForm) { f.FirstName = strings.Repeat("a", 101) }, "first name"},
		{"missing last name", func(f *ShippingForm) { f.LastName = "" }, "last name"},
		{"malformed email", func(f *ShippingForm) { f.Email = "not-an-email" }, "email"},
		{"email too long", func(f *ShippingForm) { f.Email = strings.Repeat("a", 250) + "@example.com" }, "email"},
		{"phone too short", func(f *ShippingForm) { f.Phone = "1234" }, "phone"},
		{"phone too long", func(f *ShippingForm) { f.Phone = strings.Repeat("1", 21) }, "phone"},
		{"phone with letters", func(f *ShippingForm) { f.Phone = "0300-CALL-NOW" }, "phone"},
		{"address too short", func(f *ShippingForm) { f.Address = "x" }, "address"},
		{"city too short", func(f *ShippingForm) { f.City = "L" }, "city"},
		{"state too short", func(f *ShippingForm) { f.State = "P" }, "state"},
		{"postal code too short", func(f *ShippingForm) { f.PostalCode = "12" }, "postal code"},
		{"postal code too long", func(f *ShippingForm) { f.PostalCode = strings.Repeat("1", 21) }, "postal code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := form.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if !strings.Contains(strings.ToLower(err.Error()), tt.wantMsg) {
				t.Errorf("Expected message mentioning %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

// The first failing field's message is surfaced; later failures are not
// evaluated into the response.
func TestFormValidationFailFast(t *testing.T) {
	form := validForm()
	form.FirstName = ""
	form.Email = "broken"
	form.PostalCode = ""

	err := form.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "first name") {
		t.Errorf("Expected the first field's message, got %q", err.Error())
	}
}

func TestFormAddressSnapshot(t *testing.T) {
	form := validForm()
	addr := form.ShippingAddress()
	if addr.FirstName != form.FirstName || addr.City != form.City || addr.PostalCode != form.PostalCode {
		t.Errorf("Address snapshot does not match form: %+v", addr)
	}
}
