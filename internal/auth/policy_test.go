package auth_test

import (
	"testing"

	"github.com/hugh/gatekeeper/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicy_Validate(t *testing.T) {
	policy := auth.NewPasswordPolicy(8)

	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  string
	}{
		{"valid password", "Secure1!", "Secure1!", ""},
		{"mismatched confirmation", "Secure1!", "Secure2!", "passwords do not match"},
		{"too short", "Ab1!", "Ab1!", "password is too short"},
		{"entirely numeric", "92837465", "92837465", "password is entirely numeric"},
		{"common password", "sunshine", "sunshine", "password is too common"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := auth.ValidationErrors{}
			policy.Validate(tt.password, tt.confirm, errs)

			if tt.wantErr == "" {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, tt.wantErr, errs["password"])
			}
		})
	}

	t.Run("mismatch reported before strength", func(t *testing.T) {
		// A weak password with a bad confirmation surfaces the mismatch;
		// strength feedback would reveal nothing useful yet.
		errs := auth.ValidationErrors{}
		policy.Validate("123", "456", errs)
		assert.Equal(t, "passwords do not match", errs["password"])
	})

	t.Run("configurable minimum length", func(t *testing.T) {
		strict := auth.NewPasswordPolicy(12)
		errs := auth.ValidationErrors{}
		strict.Validate("Secure1!", "Secure1!", errs)
		assert.Equal(t, "password is too short", errs["password"])
	})

	t.Run("extended denylist", func(t *testing.T) {
		policy := auth.NewPasswordPolicy(8)
		policy.Deny("companyname1")

		errs := auth.ValidationErrors{}
		policy.Validate("companyname1", "companyname1", errs)
		assert.Equal(t, "password is too common", errs["password"])
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("first error per field wins", func(t *testing.T) {
		errs := auth.ValidationErrors{}
		errs.Add("email", "email is required")
		errs.Add("email", "enter a valid email address")

		assert.Equal(t, "email is required", errs["email"])
	})

	t.Run("error string lists fields deterministically", func(t *testing.T) {
		errs := auth.ValidationErrors{}
		errs.Add("role", "role is required")
		errs.Add("email", "email is required")

		assert.Equal(t, "validation failed: email: email is required; role: role is required", errs.Error())
	})
}
