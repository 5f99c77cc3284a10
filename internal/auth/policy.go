package auth

import "unicode"

// defaultCommonPasswords is a small denylist of passwords seen at the
// top of public breach corpora. Deployments with stricter requirements
// can extend it through PasswordPolicy.Deny.
var defaultCommonPasswords = []string{
	"password",
	"password1",
	"password123",
	"12345678",
	"123456789",
	"1234567890",
	"qwerty123",
	"qwertyuiop",
	"letmein1",
	"iloveyou",
	"admin123",
	"welcome1",
	"abc12345",
	"sunshine",
	"football",
}

// PasswordPolicy checks candidate passwords against a configurable
// strength policy: minimum length, not purely numeric, and not on the
// common-password denylist.
type PasswordPolicy struct {
	MinLength int
	denylist  map[string]struct{}
}

func NewPasswordPolicy(minLength int) *PasswordPolicy {
	if minLength <= 0 {
		minLength = 8
	}

	denylist := make(map[string]struct{}, len(defaultCommonPasswords))
	for _, p := range defaultCommonPasswords {
		denylist[p] = struct{}{}
	}

	return &PasswordPolicy{
		MinLength: minLength,
		denylist:  denylist,
	}
}

// Deny adds passwords to the denylist.
func (p *PasswordPolicy) Deny(passwords ...string) {
	for _, pw := range passwords {
		p.denylist[pw] = struct{}{}
	}
}

// Validate checks the password and its confirmation, appending one
// field-scoped error per failure. It has no side effects beyond errs.
func (p *PasswordPolicy) Validate(password, confirmation string, errs ValidationErrors) {
	if password != confirmation {
		errs.Add("password", "passwords do not match")
		return
	}

	if len(password) < p.MinLength {
		errs.Add("password", "password is too short")
		return
	}
	if isNumeric(password) {
		errs.Add("password", "password is entirely numeric")
		return
	}
	if _, ok := p.denylist[password]; ok {
		errs.Add("password", "password is too common")
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
