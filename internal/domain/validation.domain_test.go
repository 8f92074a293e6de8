package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMap(t *testing.T) {
	ve := NewValidationError("email", "must be unique")
	ve.Add("*", "password too weak")
	ve.Add("*", "password reused")

	assert.Equal(t, map[string][]string{
		"email": {"must be unique"},
		"*":     {"password too weak", "password reused"},
	}, ve.Map())

	// Per-field message order follows insertion order.
	assert.Equal(t, []string{"password too weak", "password reused"}, ve.Map()["*"])
}

func TestValidationErrorError(t *testing.T) {
	assert.Contains(t, NewValidationError("email", "must be unique").Error(), "email")
	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
}
