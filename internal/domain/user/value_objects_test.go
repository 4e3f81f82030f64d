//go:build unit

package user_test

import (
	"testing"

	"mentorsync/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid email", input: "mentor@example.com", want: "mentor@example.com"},
		{name: "normalized to lowercase", input: "Mentor@Example.COM", want: "mentor@example.com"},
		{name: "surrounding whitespace trimmed", input: "  mentor@example.com  ", want: "mentor@example.com"},
		{name: "missing at sign", input: "mentor.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "mentor@", errIs: user.ErrInvalidEmail},
		{name: "empty string", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("accepts eight characters", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		assert.NoError(t, err)
	})

	t.Run("rejects shorter input", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"acc_user", "mentor", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
