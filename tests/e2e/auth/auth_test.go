//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "mentorsync/internal/handler/dto/request"
	resdto "mentorsync/internal/handler/dto/response"
	"mentorsync/internal/usecase/queries"
	"mentorsync/tests/common/authtest"
	"mentorsync/tests/common/httptest"
	"mentorsync/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	s.Run("Normal case: acc_user registration creates user and profile", func() {
		t := s.T()

		registered := authtest.RegisterUser(t, s.Router, reqdto.RegisterRequest{
			Email:     "alex@example.com",
			Password:  authtest.TestPassword,
			Role:      "acc_user",
			FirstName: "Alex",
			LastName:  "Seeker",
		})

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM acc_users WHERE id = $1 AND user_id = $2",
			registered.ProfileID, registered.UserID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Normal case: mentor registration creates mentor profile", func() {
		t := s.T()

		registered := authtest.RegisterUser(t, s.Router, reqdto.RegisterRequest{
			Email:     "dana@example.com",
			Password:  authtest.TestPassword,
			Role:      "mentor",
			FirstName: "Dana",
			LastName:  "Mentor",
		})

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM mentors WHERE id = $1 AND user_id = $2",
			registered.ProfileID, registered.UserID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Error case: duplicate email is rejected", func() {
		t := s.T()

		req := reqdto.RegisterRequest{
			Email:     "taken@example.com",
			Password:  authtest.TestPassword,
			Role:      "acc_user",
			FirstName: "Alex",
			LastName:  "Seeker",
		}
		authtest.RegisterUser(t, s.Router, req)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email already registered")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "login@example.com",
			password:       authtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       authtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "login@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       authtest.TestPassword,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       authtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "login@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			authtest.RegisterUser(t, s.Router, reqdto.RegisterRequest{
				Email:     "login@example.com",
				Password:  authtest.TestPassword,
				Role:      "acc_user",
				FirstName: "Alex",
				LastName:  "Seeker",
			})
			authtest.RegisterUser(t, s.Router, reqdto.RegisterRequest{
				Email:     "inactive@example.com",
				Password:  authtest.TestPassword,
				Role:      "acc_user",
				FirstName: "Ida",
				LastName:  "Idle",
			})
			_, err := s.DB.Exec(t.Context(),
				"UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
			require.NoError(t, err)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				reqdto.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var response resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
				require.NotEmpty(t, response.AccessToken)
				require.Equal(t, tt.email, response.User.Email)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: authenticated user reads own identity", func() {
		t := s.T()

		token := authtest.RegisterAndLogin(t, s.Router, "me@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "me@example.com", me.Email)
		require.Equal(t, "acc_user", me.Role)
	})

	s.Run("Error case: missing token gets 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: garbage token gets 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("Normal case: refresh token in body rotates the pair", func() {
		t := s.T()

		authtest.RegisterUser(t, s.Router, reqdto.RegisterRequest{
			Email:     "refresh@example.com",
			Password:  authtest.TestPassword,
			Role:      "acc_user",
			FirstName: "Alex",
			LastName:  "Seeker",
		})
		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "refresh@example.com", Password: authtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, lw.Code)
		refreshCookie := httptest.ExtractCookie(lw, "refresh_token")
		require.NotNil(t, refreshCookie)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			reqdto.RefreshRequest{RefreshToken: refreshCookie.Value}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
		require.NotEmpty(t, response["access_token"])
	})

	s.Run("Error case: garbage refresh token gets 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			reqdto.RefreshRequest{RefreshToken: "not-a-jwt"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}
