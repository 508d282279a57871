package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateField(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		value    string
		required bool
		want     error
	}{
		{name: "required empty text", kind: Text, value: "", required: true, want: ErrMissingRequired},
		{name: "required empty email", kind: Email, value: "", required: true, want: ErrMissingRequired},
		{name: "required empty url", kind: URL, value: "", required: true, want: ErrMissingRequired},
		{name: "required empty phone", kind: Phone, value: "", required: true, want: ErrMissingRequired},
		{name: "required whitespace only", kind: Text, value: "   ", required: true, want: ErrMissingRequired},
		{name: "optional empty passes", kind: Email, value: "", required: false, want: nil},
		{name: "plain text passes", kind: Text, value: "Acme Corp", required: true, want: nil},

		{name: "valid email", kind: Email, value: "user@example.com", required: true, want: nil},
		{name: "email missing at", kind: Email, value: "bad", required: true, want: ErrInvalidEmail},
		{name: "email missing dot", kind: Email, value: "user@example", required: true, want: ErrInvalidEmail},
		{name: "email with space", kind: Email, value: "us er@example.com", required: true, want: ErrInvalidEmail},

		{name: "valid absolute url", kind: URL, value: "https://freshhealthy.com", required: false, want: nil},
		{name: "hostless absolute url", kind: URL, value: "mailto:team@acme.com", required: false, want: nil},
		{name: "relative url", kind: URL, value: "/menu", required: false, want: ErrInvalidURL},
		{name: "bare word url", kind: URL, value: "freshhealthy", required: false, want: ErrInvalidURL},

		{name: "valid phone", kind: Phone, value: "4045550123", required: true, want: nil},
		{name: "phone with plus", kind: Phone, value: "+14045550123", required: true, want: nil},
		{name: "phone with separators", kind: Phone, value: "(404) 555-0123", required: true, want: nil},
		{name: "phone with tab", kind: Phone, value: "404\t555\t0123", required: true, want: nil},
		{name: "phone with non-breaking space", kind: Phone, value: "404\u00a0555\u00a00123", required: true, want: nil},
		{name: "phone leading zero", kind: Phone, value: "0445550123", required: true, want: ErrInvalidPhone},
		{name: "phone with letters", kind: Phone, value: "404-CALL-NOW", required: true, want: ErrInvalidPhone},
		{name: "phone too long", kind: Phone, value: "12345678901234567", required: true, want: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateField(tt.kind, tt.value, tt.required)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestValidateFormCollectsEveryFailure(t *testing.T) {
	failures := ValidateForm([]Field{
		{Name: "email", Kind: Email, Value: "bad", Required: true},
		{Name: "first_name", Kind: Text, Value: "", Required: true},
		{Name: "phone", Kind: Phone, Value: "0123", Required: true},
		{Name: "location", Kind: Text, Value: "Atlanta, GA", Required: true},
	})

	// Every failing field reports its own error; passing fields are absent.
	assert.Len(t, failures, 3)
	assert.ErrorIs(t, failures["email"], ErrInvalidEmail)
	assert.ErrorIs(t, failures["first_name"], ErrMissingRequired)
	assert.ErrorIs(t, failures["phone"], ErrInvalidPhone)
	assert.NotContains(t, failures, "location")
}

func TestValidateFormPasses(t *testing.T) {
	failures := ValidateForm([]Field{
		{Name: "email", Kind: Email, Value: "user@example.com", Required: true},
		{Name: "website", Kind: URL, Value: "", Required: false},
	})
	assert.Nil(t, failures)
}

func TestValidateFormMessages(t *testing.T) {
	failures := ValidateForm([]Field{
		{Name: "email", Kind: Email, Value: "bad", Required: true},
	})
	msgs := failures.Messages()
	assert.Equal(t, map[string]string{"email": "Please enter a valid email address"}, msgs)

	var none FieldErrors
	assert.Nil(t, none.Messages())
}
