//go:build unit

package timeslot_test

import (
	"testing"
	"time"

	"mentorsync/internal/domain/timeslot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "valid window",
			start: base,
			end:   base.Add(time.Hour),
		},
		{
			name:  "start equals end",
			start: base,
			end:   base,
			errIs: timeslot.ErrInvalidWindow,
		},
		{
			name:  "start after end",
			start: base.Add(time.Hour),
			end:   base,
			errIs: timeslot.ErrInvalidWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := timeslot.NewTimeWindow(tt.start, tt.end)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, window.Start())
			assert.Equal(t, tt.end, window.End())
			assert.Equal(t, tt.end.Sub(tt.start), window.Duration())
		})
	}
}

func TestNewBatch(t *testing.T) {
	mentorID := uuid.New()
	sessionID := uuid.New()
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("builds one timeslot per window", func(t *testing.T) {
		slots, err := timeslot.NewBatch(mentorID, sessionID, []struct{ Start, End time.Time }{
			{Start: base, End: base.Add(time.Hour)},
			{Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour)},
		})
		require.NoError(t, err)
		require.Len(t, slots, 2)

		for _, s := range slots {
			assert.NotEqual(t, uuid.Nil, s.ID())
			assert.Equal(t, mentorID, s.MentorID())
			assert.Equal(t, sessionID, s.SessionID())
			assert.False(t, s.IsBooked())
		}
		assert.NotEqual(t, slots[0].ID(), slots[1].ID())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := timeslot.NewBatch(mentorID, sessionID, nil)
		assert.ErrorIs(t, err, timeslot.ErrEmptyBatch)
	})

	t.Run("rejects batch containing an inverted window", func(t *testing.T) {
		_, err := timeslot.NewBatch(mentorID, sessionID, []struct{ Start, End time.Time }{
			{Start: base, End: base.Add(time.Hour)},
			{Start: base.Add(time.Hour), End: base},
		})
		assert.ErrorIs(t, err, timeslot.ErrInvalidWindow)
	})
}
