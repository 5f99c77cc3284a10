package auth

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationErrors aggregates field-scoped registration failures so a
// single response can report every invalid field, not just the first.
type ValidationErrors map[string]string

func (v ValidationErrors) Add(field, message string) {
	// First error per field wins; later checks don't overwrite a more
	// specific earlier message.
	if _, ok := v[field]; !ok {
		v[field] = message
	}
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
