package platform

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenSource struct {
	token string
	ok    bool
}

func (s *stubTokenSource) Token() (string, bool) { return s.token, s.ok }

func TestAuthTransportAttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	transport := &AuthTransport{Source: &stubTokenSource{token: "tok123", ok: true}}
	client := &http.Client{Transport: transport}

	resp, err := client.Get(srv.URL + "/api/plazas")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestAuthTransportSkipsLoginEndpoint(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	transport := &AuthTransport{Source: &stubTokenSource{token: "tok123", ok: true}}
	client := &http.Client{Transport: transport}

	resp, err := client.Post(srv.URL+"/api/auth/login", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotAuth)
}

func TestAuthTransportNoToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	transport := &AuthTransport{Source: &stubTokenSource{}}
	client := &http.Client{Transport: transport}

	resp, err := client.Get(srv.URL + "/api/plazas")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotAuth)
}

func TestAuthTransportOnDenied(t *testing.T) {
	tests := []struct {
		name   string
		status int
		path   string
		denied bool
	}{
		{"401 triggers", http.StatusUnauthorized, "/api/plazas", true},
		{"403 triggers", http.StatusForbidden, "/api/plazas", true},
		{"200 does not", http.StatusOK, "/api/plazas", false},
		{"404 does not", http.StatusNotFound, "/api/plazas", false},
		{"401 on login does not", http.StatusUnauthorized, "/api/auth/login", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			denied := false
			transport := &AuthTransport{
				Source:   &stubTokenSource{token: "tok", ok: true},
				OnDenied: func() { denied = true },
			}
			client := &http.Client{Transport: transport}

			resp, err := client.Get(srv.URL + tt.path)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.denied, denied)
		})
	}
}

func TestAuthTransportDoesNotMutateRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	transport := &AuthTransport{Source: &stubTokenSource{token: "tok", ok: true}}

	req, err := http.NewRequest("GET", srv.URL+"/api/plazas", nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
}
