//go:build unit

package session_test

import (
	"testing"

	"mentorsync/internal/domain/mentor"
	"mentorsync/internal/domain/session"
	"mentorsync/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	mentorID := uuid.New()
	positionID := uuid.New()

	t.Run("valid offering", func(t *testing.T) {
		s, err := session.NewSession(mentorID, positionID, 85, "Cafe Central")
		require.NoError(t, err)

		assert.Equal(t, mentorID, s.MentorID())
		assert.Equal(t, positionID, s.PositionID())
		assert.Equal(t, 85.0, s.Price())
		assert.Equal(t, "Cafe Central", s.LocationName())
		assert.Equal(t, "https://maps.google.com/?q=Cafe+Central", s.LocationMapURL())
		assert.True(t, s.IsAvailable())
		assert.False(t, s.IsAutoCreated())
	})

	t.Run("free sessions are allowed", func(t *testing.T) {
		_, err := session.NewSession(mentorID, positionID, 0, "Online")
		assert.NoError(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := session.NewSession(mentorID, positionID, -1, "Online")
		assert.ErrorIs(t, err, session.ErrNegativePrice)
	})

	t.Run("blank location", func(t *testing.T) {
		_, err := session.NewSession(mentorID, positionID, 50, "   ")
		assert.ErrorIs(t, err, session.ErrEmptyLocation)
	})
}

func TestSynthesizeDefault(t *testing.T) {
	positionID := uuid.New()

	t.Run("uses profile values when present", func(t *testing.T) {
		m := mentor.NewMentor(uuid.New(), "Dana", "Mentor",
			ptr.To(95.0), ptr.To("Office 12B"), &positionID)

		s, err := session.SynthesizeDefault(m)
		require.NoError(t, err)

		assert.Equal(t, m.ID(), s.MentorID())
		assert.Equal(t, positionID, s.PositionID())
		assert.Equal(t, 95.0, s.Price())
		assert.Equal(t, "Office 12B", s.LocationName())
		assert.True(t, s.IsAutoCreated())
		assert.True(t, s.IsAvailable())
	})

	t.Run("falls back to platform defaults", func(t *testing.T) {
		m := mentor.NewMentor(uuid.New(), "Dana", "Mentor", nil, nil, &positionID)

		s, err := session.SynthesizeDefault(m)
		require.NoError(t, err)

		assert.Equal(t, mentor.DefaultSessionRate, s.Price())
		assert.Equal(t, mentor.DefaultMeetingLocation, s.LocationName())
	})

	t.Run("fails without a position", func(t *testing.T) {
		m := mentor.NewMentor(uuid.New(), "Dana", "Mentor", nil, nil, nil)

		_, err := session.SynthesizeDefault(m)
		assert.ErrorIs(t, err, mentor.ErrNoDefaultPosition)
	})
}
