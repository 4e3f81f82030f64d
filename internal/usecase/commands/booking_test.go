//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"mentorsync/internal/handler/dto/request"
	"mentorsync/internal/infra"
	"mentorsync/internal/pkg/ptr"
	"mentorsync/internal/usecase/commands"
	"mentorsync/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingFixture() (*fakeUoW, uuid.UUID, request.CreateBookingRequest) {
	accUserUserID := uuid.New()
	mentorID := uuid.New()
	sessionID := uuid.New()
	positionID := uuid.New()
	timeslotID := uuid.New()
	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	u := newFakeUoW()
	u.tx.reads.accUser = &shared.AccUserSnapshot{
		ID:        uuid.New(),
		UserID:    accUserUserID,
		FirstName: "Alex",
		LastName:  "Seeker",
	}
	u.tx.reads.mentorByID = &shared.MentorSnapshot{
		ID:          mentorID,
		UserID:      uuid.New(),
		FirstName:   "Dana",
		LastName:    "Mentor",
		SessionRate: ptr.To(75.0),
	}
	u.tx.reads.session = &shared.SessionSnapshot{
		ID:           sessionID,
		MentorID:     mentorID,
		PositionID:   positionID,
		Price:        75,
		LocationName: "Online",
		IsAvailable:  true,
	}
	u.tx.reads.pos = &shared.PositionSnapshot{ID: positionID, Name: "Backend Engineer"}
	u.tx.timeslots.claimed = &shared.ClaimedTimeslot{
		ID:        timeslotID,
		MentorID:  mentorID,
		SessionID: sessionID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
	return u, accUserUserID, request.CreateBookingRequest{
		TimeslotID: timeslotID,
		MentorID:   mentorID,
		SessionID:  sessionID,
		PositionID: positionID,
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("creates booking with frozen snapshot", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		cmd := commands.NewBookingCommands(u)

		id, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		require.NoError(t, err)
		created := u.tx.bookings.created
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, req.TimeslotID, created.TimeslotID())
		assert.Equal(t, req.TimeslotID, u.tx.timeslots.claimedID)
		assert.Equal(t, u.tx.reads.accUser.ID, created.AccUserID())
		assert.Equal(t, "Dana Mentor", created.Snapshot().MentorName())
		assert.Equal(t, "Alex Seeker", created.Snapshot().AccUserName())
		assert.Equal(t, "Backend Engineer", created.Snapshot().PositionName())
		assert.Equal(t, 75.0, created.Snapshot().SessionPrice())
		assert.Equal(t, 75.0, created.TotalAmount())
		assert.True(t, created.IsPending())
	})

	t.Run("account not found", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		u.tx.reads.accUser = nil
		u.tx.reads.accUserErr = infra.NewRepoErr("account not found", infra.KindNotFound)
		cmd := commands.NewBookingCommands(u)

		_, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		assert.ErrorIs(t, err, commands.ErrAccountNotFound)
		assert.Nil(t, u.tx.bookings.created)
	})

	t.Run("timeslot already claimed", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		u.tx.timeslots.claimed = nil
		u.tx.timeslots.claimErr = infra.NewRepoErr("timeslot not available", infra.KindConflict)
		cmd := commands.NewBookingCommands(u)

		_, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		assert.ErrorIs(t, err, commands.ErrTimeslotUnavailable)
		assert.Nil(t, u.tx.bookings.created)
	})

	t.Run("mentor reference does not match the claimed slot", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		req.MentorID = uuid.New()
		cmd := commands.NewBookingCommands(u)

		_, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		assert.ErrorIs(t, err, commands.ErrInvalidBookingData)
		assert.Nil(t, u.tx.bookings.created)
	})

	t.Run("session reference does not match the claimed slot", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		req.SessionID = uuid.New()
		cmd := commands.NewBookingCommands(u)

		_, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		assert.ErrorIs(t, err, commands.ErrInvalidBookingData)
		assert.Nil(t, u.tx.bookings.created)
	})

	t.Run("position reference does not match the session", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		req.PositionID = uuid.New()
		cmd := commands.NewBookingCommands(u)

		_, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		assert.ErrorIs(t, err, commands.ErrInvalidBookingData)
		assert.Nil(t, u.tx.bookings.created)
	})

	t.Run("dangling mentor reference", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		u.tx.reads.mentorByID = nil
		u.tx.reads.mentorByIDErr = infra.NewRepoErr("mentor not found", infra.KindNotFound)
		cmd := commands.NewBookingCommands(u)

		_, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		assert.ErrorIs(t, err, commands.ErrInvalidBookingData)
	})

	t.Run("dangling session reference", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		u.tx.reads.session = nil
		u.tx.reads.sessionErr = infra.NewRepoErr("session not found", infra.KindNotFound)
		cmd := commands.NewBookingCommands(u)

		_, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		assert.ErrorIs(t, err, commands.ErrInvalidBookingData)
	})

	t.Run("dangling position reference", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		u.tx.reads.pos = nil
		u.tx.reads.posErr = infra.NewRepoErr("position not found", infra.KindNotFound)
		cmd := commands.NewBookingCommands(u)

		_, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		assert.ErrorIs(t, err, commands.ErrInvalidBookingData)
	})

	t.Run("write failure is marked", func(t *testing.T) {
		u, accUserUserID, req := bookingFixture()
		u.tx.bookings.createErr = infra.NewRepoErr("insert failed", infra.KindDBFailure)
		cmd := commands.NewBookingCommands(u)

		_, err := cmd.CreateBooking(context.Background(), accUserUserID, req)

		assert.ErrorIs(t, err, commands.ErrBookingWriteFailed)
	})
}
