//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "mentorsync/internal/handler/dto/request"
	resdto "mentorsync/internal/handler/dto/response"
	"mentorsync/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

// RegisterUser creates an account through the public API and returns the
// ids of the user row and its role profile.
func RegisterUser(t *testing.T, router *gin.Engine, req reqdto.RegisterRequest) resdto.RegisterResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register", req, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered resdto.RegisterResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &registered))
	require.NotEqual(t, uuid.Nil, registered.UserID)
	return registered
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// RegisterAndLogin registers an acc_user account and returns its token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	RegisterUser(t, router, reqdto.RegisterRequest{
		Email:     email,
		Password:  TestPassword,
		Role:      "acc_user",
		FirstName: "Alex",
		LastName:  "Seeker",
	})
	return LoginUser(t, router, email, TestPassword)
}

// RegisterMentorAndLogin registers a mentor with a full profile and returns
// the token plus the mentor profile id.
func RegisterMentorAndLogin(t *testing.T, router *gin.Engine, email string, rate *float64, location *string, positionID *uuid.UUID) (string, uuid.UUID) {
	t.Helper()

	registered := RegisterUser(t, router, reqdto.RegisterRequest{
		Email:           email,
		Password:        TestPassword,
		Role:            "mentor",
		FirstName:       "Dana",
		LastName:        "Mentor",
		SessionRate:     rate,
		MeetingLocation: location,
		PositionID:      positionID,
	})
	return LoginUser(t, router, email, TestPassword), registered.ProfileID
}
