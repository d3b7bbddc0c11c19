package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernameValidation(t *testing.T) {
	InitValidator()

	type account struct {
		Username string `validate:"required,username"`
	}

	testCases := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "Letters", username: "alice", valid: true},
		{name: "AllowedPunctuation", username: "a.l+i-c_e@x", valid: true},
		{name: "Space", username: "al ice", valid: false},
		{name: "Slash", username: "al/ice", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Struct(account{Username: tc.username})
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestInitValidatorIsIdempotent(t *testing.T) {
	InitValidator()
	first := Validate
	InitValidator()
	assert.Same(t, first, Validate)
}
