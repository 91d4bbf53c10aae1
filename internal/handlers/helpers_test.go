package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-mood-journal/internal/middlewares"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request whose body is body encoded as JSON. A string
// body is sent as is.
func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	return httptest.NewRequest(method, target, &buf)
}

// loggedIn attaches a session with username logged in to r.
func loggedIn(r *http.Request, username string) (*http.Request, *models.Session) {
	session := models.NewSession()
	session.SetCurrentUser(username)
	return r.WithContext(middlewares.SetSessionToContext(r.Context(), session)), session
}
