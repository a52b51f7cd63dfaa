//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	contactURL      = "/api/rooms/contact"
	messagesURL     = "/api/rooms/admin/messages"
	reservationsURL = "/api/rooms/admin/reservations"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) TestMessages() {
	s.Run("Normal case: a contact message shows up in the admin listing", func() {
		t := s.T()

		body := reqdto.SendMessageRequest{FullName: "Ivan Petrov", Email: "ivan@example.com", Message: "Late arrival"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contactURL, body, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL, nil, s.AdminToken())

		var rows []map[string]any
		httptest.AssertEnvelopeData(t, w, http.StatusOK, &rows)
		require.Len(t, rows, 1)
		assert.Equal(t, "Ivan Petrov", rows[0]["full_name"])
		assert.Equal(t, "Late arrival", rows[0]["message"])
	})

	s.Run("Error case: incomplete message is rejected", func() {
		t := s.T()

		body := reqdto.SendMessageRequest{FullName: "Ivan Petrov"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contactURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

func (s *AdminSuite) TestAccessControl() {
	testCases := []struct {
		name   string
		token  func() string
		status int
		msg    string
	}{
		{name: "Error case: no token", token: func() string { return "" }, status: http.StatusUnauthorized, msg: "Access token required"},
		{name: "Error case: guest role", token: s.GuestToken, status: http.StatusForbidden, msg: "Insufficient permissions"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, tc.token())
			httptest.AssertErrorResponse(t, w, tc.status, tc.msg)
		})
	}

	s.Run("Normal case: admin sees an empty reservation list", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, s.AdminToken())

		var rows []map[string]any
		httptest.AssertEnvelopeData(t, w, http.StatusOK, &rows)
		assert.Empty(t, rows)
	})
}
