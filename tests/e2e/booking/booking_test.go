//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	reqdto "mentorsync/internal/handler/dto/request"
	resdto "mentorsync/internal/handler/dto/response"
	"mentorsync/internal/pkg/ptr"
	"mentorsync/tests/common/authtest"
	"mentorsync/tests/common/dbtest"
	"mentorsync/tests/common/httptest"
	"mentorsync/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	timeslotsURL         = "/api/timeslots"
	bookingsURL          = "/api/bookings"
	mentorBookingsURL    = "/api/mentor/bookings"
	availableSessionsURL = "/api/sessions/available"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// offer carries everything a buyer needs to reference a published timeslot.
type offer struct {
	SessionID   uuid.UUID
	TimeslotID  uuid.UUID
	MentorID    uuid.UUID
	PositionID  uuid.UUID
	MentorToken string
}

func bookingRequest(o offer) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		TimeslotID: o.TimeslotID,
		MentorID:   o.MentorID,
		SessionID:  o.SessionID,
		PositionID: o.PositionID,
	}
}

func sessionTimeslotsURL(sessionID uuid.UUID) string {
	return "/api/sessions/" + sessionID.String() + "/timeslots"
}

// publishTimeslots registers a mentor, publishes one availability window and
// returns the auto-provisioned offering's identifiers.
func (s *BookingSuite) publishTimeslots(email string, start time.Time) offer {
	t := s.T()

	positionID := dbtest.CreateTestPosition(t, s.DB, "Backend Engineer")
	mentorToken, mentorID := authtest.RegisterMentorAndLogin(t, s.Router, email,
		ptr.To(90.0), ptr.To("Office 12B"), &positionID)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, timeslotsURL,
		reqdto.AddTimeslotsRequest{
			Timeslots: []reqdto.TimeslotWindow{{StartTime: start, EndTime: start.Add(time.Hour)}},
		}, mentorToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var published resdto.AddTimeslotsResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &published))
	require.NotEqual(t, uuid.Nil, published.SessionID)
	require.Equal(t, int64(1), published.Added)

	sw := httptest.PerformRequest(t, s.Router, http.MethodGet,
		sessionTimeslotsURL(published.SessionID), nil, mentorToken)
	require.Equal(t, http.StatusOK, sw.Code, sw.Body.String())

	var slots []*resdto.TimeslotResponse
	require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &slots))
	require.Len(t, slots, 1)

	return offer{
		SessionID:   published.SessionID,
		TimeslotID:  slots[0].ID,
		MentorID:    mentorID,
		PositionID:  positionID,
		MentorToken: mentorToken,
	}
}

func (s *BookingSuite) TestBookingFlow() {
	s.Run("Normal case: full flow from publish to booked slot disappearing", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-flow@example.com", start)

		// The published slot shows up in the public availability listing
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, availableSessionsURL, nil, "")
		require.Equal(t, http.StatusOK, aw.Code, aw.Body.String())

		var available []*resdto.AvailableSessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &available))
		require.Len(t, available, 1)
		require.Equal(t, o.SessionID, available[0].ID)
		require.Equal(t, "Dana Mentor", available[0].MentorName)
		require.Equal(t, 90.0, available[0].Price)
		require.Len(t, available[0].Timeslots, 1)
		require.Equal(t, o.TimeslotID, available[0].Timeslots[0].ID)

		accToken := authtest.RegisterAndLogin(t, s.Router, "seeker-flow@example.com")

		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(o), accToken)
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &created))

		expected := &resdto.BookingResponse{
			TimeslotID:   o.TimeslotID,
			SessionID:    o.SessionID,
			MentorID:     o.MentorID,
			PositionID:   o.PositionID,
			MentorName:   "Dana Mentor",
			AccUserName:  "Alex Seeker",
			PositionName: "Backend Engineer",
			SessionPrice: 90,
			TotalAmount:  90,
			Status:       "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.BookingResponse{},
				"ID", "AccUserID", "StartTime", "EndTime", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
		require.True(t, created.StartTime.Equal(start))

		// The booked slot is gone from availability
		aw2 := httptest.PerformRequest(t, s.Router, http.MethodGet, availableSessionsURL, nil, "")
		require.Equal(t, http.StatusOK, aw2.Code)

		var availableAfter []*resdto.AvailableSessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw2.Body, &availableAfter))
		require.Empty(t, availableAfter)

		// Both participants see the booking in their listings
		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, accToken)
		require.Equal(t, http.StatusOK, ow.Code)
		var own []*resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &own))
		require.Len(t, own, 1)
		require.Equal(t, created.ID, own[0].ID)

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, mentorBookingsURL, nil, o.MentorToken)
		require.Equal(t, http.StatusOK, mw.Code)
		var received []*resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, mw.Body, &received))
		require.Len(t, received, 1)
		require.Equal(t, created.ID, received[0].ID)
	})

	s.Run("Normal case: concurrent bookings allocate the slot exactly once", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-burst@example.com", start)
		accToken := authtest.RegisterAndLogin(t, s.Router, "seeker-burst@example.com")

		const attempts = 8
		codes := make(chan int, attempts)
		var wg sync.WaitGroup
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
					bookingRequest(o), accToken)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		var created, conflicted int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "exactly one attempt may win the slot")
		require.Equal(t, attempts-1, conflicted)

		var rows int
		require.NoError(t, s.DB.QueryRow(t.Context(), `SELECT COUNT(*) FROM bookings`).Scan(&rows))
		require.Equal(t, 1, rows)
	})

	s.Run("Error case: second booking of the same slot gets 409", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-race@example.com", start)

		firstToken := authtest.RegisterAndLogin(t, s.Router, "seeker-first@example.com")
		secondToken := authtest.RegisterAndLogin(t, s.Router, "seeker-second@example.com")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(o), firstToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(o), secondToken)
		httptest.AssertErrorResponse(t, w2, http.StatusConflict, "Timeslot unavailable")
	})

	s.Run("Error case: booking an unknown slot gets 409", func() {
		t := s.T()

		accToken := authtest.RegisterAndLogin(t, s.Router, "seeker-ghost@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			reqdto.CreateBookingRequest{
				TimeslotID: uuid.New(),
				MentorID:   uuid.New(),
				SessionID:  uuid.New(),
				PositionID: uuid.New(),
			}, accToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Timeslot unavailable")
	})

	s.Run("Error case: mismatched mentor reference gets 422 and keeps the slot", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-mismatch@example.com", start)
		accToken := authtest.RegisterAndLogin(t, s.Router, "seeker-mismatch@example.com")

		req := bookingRequest(o)
		req.MentorID = uuid.New()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, accToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid booking data")

		// The rejected claim rolled back, so a correct request still succeeds
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(o), accToken)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())
	})

	s.Run("Error case: mentors cannot create bookings", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-self@example.com", start)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(o), o.MentorToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *BookingSuite) TestGetBooking() {
	s.Run("Normal case: participants can read, strangers cannot", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-access@example.com", start)
		accToken := authtest.RegisterAndLogin(t, s.Router, "seeker-access@example.com")

		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(o), accToken)
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &created))
		detailURL := bookingsURL + "/" + created.ID.String()

		// Buyer
		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, accToken)
		require.Equal(t, http.StatusOK, ow.Code, ow.Body.String())

		// Mentor
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, o.MentorToken)
		require.Equal(t, http.StatusOK, mw.Code, mw.Body.String())

		// Stranger
		strangerToken := authtest.RegisterAndLogin(t, s.Router, "stranger@example.com")
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, strangerToken)
		httptest.AssertErrorResponse(t, sw, http.StatusForbidden, "Access denied")
	})
}

func (s *BookingSuite) TestTimeslotManagement() {
	s.Run("Normal case: auto-created session is reused across publishes", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-reuse@example.com", start)

		later := start.Add(4 * time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timeslotsURL,
			reqdto.AddTimeslotsRequest{
				Timeslots: []reqdto.TimeslotWindow{{StartTime: later, EndTime: later.Add(time.Hour)}},
			}, o.MentorToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var published resdto.AddTimeslotsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &published))
		require.Equal(t, o.SessionID, published.SessionID, "second publish must reuse the auto-created session")
	})

	s.Run("Error case: mentor without a position cannot auto-provision", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		mentorToken, _ := authtest.RegisterMentorAndLogin(t, s.Router,
			"mentor-nopos@example.com", nil, nil, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timeslotsURL,
			reqdto.AddTimeslotsRequest{
				Timeslots: []reqdto.TimeslotWindow{{StartTime: start, EndTime: start.Add(time.Hour)}},
			}, mentorToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Mentor position required")
	})

	s.Run("Error case: session slot listing is gated to the owning mentor", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-owner@example.com", start)

		// Anonymous callers are rejected outright
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			sessionTimeslotsURL(o.SessionID), nil, "")
		httptest.AssertErrorResponse(t, aw, http.StatusUnauthorized, "Access token required")

		// Another mentor cannot see the session at all
		otherToken, _ := authtest.RegisterMentorAndLogin(t, s.Router,
			"mentor-other@example.com", ptr.To(50.0), ptr.To("Online"), &o.PositionID)
		ow := httptest.PerformRequest(t, s.Router, http.MethodGet,
			sessionTimeslotsURL(o.SessionID), nil, otherToken)
		httptest.AssertErrorResponse(t, ow, http.StatusNotFound, "Session not found")

		// The owner still sees the published slot
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			sessionTimeslotsURL(o.SessionID), nil, o.MentorToken)
		require.Equal(t, http.StatusOK, sw.Code, sw.Body.String())
	})

	s.Run("Error case: rescheduling a slot past its end is rejected", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-resched@example.com", start)

		// Only start_time moves, past the stored end_time
		lateStart := start.Add(2 * time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			timeslotsURL+"/"+o.TimeslotID.String(),
			reqdto.UpdateTimeslotRequest{StartTime: &lateStart}, o.MentorToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid timeslot data")
	})

	s.Run("Normal case: deleted slot no longer appears under its session", func() {
		t := s.T()
		start := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Hour)

		o := s.publishTimeslots("mentor-delete@example.com", start)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			timeslotsURL+"/"+o.TimeslotID.String(), nil, o.MentorToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			sessionTimeslotsURL(o.SessionID), nil, o.MentorToken)
		require.Equal(t, http.StatusOK, sw.Code)

		var slots []*resdto.TimeslotResponse
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &slots))
		require.Empty(t, slots)
	})
}
