package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neume-network/schema"
)

func newTestServer(t *testing.T, opts ...schema.CompileOption) *httptest.Server {
	t.Helper()
	s, err := New(nil, opts...)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestListSchemas(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/schemas")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, err = uuid.Parse(resp.Header.Get(HeaderRequestID))
	assert.NoError(t, err)

	var out []SchemaSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, len(schema.Names()))
	names := make([]string, 0, len(out))
	for _, s := range out {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, schema.NameTrack)
	assert.Contains(t, names, schema.NameMessage)
}

func TestGetSchema(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/schemas/artist")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/schema+json", resp.Header.Get("Content-Type"))

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, schema.DraftURI, doc["$schema"])
	assert.Equal(t, []any{"version", "name"}, doc["required"])

	missing, err := http.Get(ts.URL + "/schemas/album")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestValidate(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		status      int
		keywords    []string
	}{
		{
			name:   "valid",
			path:   "/schemas/platform/validate",
			body:   `{"version":"1.0.0","name":"Sound","uri":"https://sound.xyz"}`,
			status: http.StatusOK,
		},
		{
			name:     "invalid",
			path:     "/schemas/platform/validate",
			body:     `{"version":"1.0.0","name":"Sound","uri":"false formatting"}`,
			status:   http.StatusUnprocessableEntity,
			keywords: []string{"format"},
		},
		{
			name:        "yaml body",
			path:        "/schemas/artist/validate",
			contentType: "application/yaml; charset=utf-8",
			body:        "version: 1.0.0\nname: Mc Thanks\n",
			status:      http.StatusOK,
		},
		{
			name:   "malformed",
			path:   "/schemas/artist/validate",
			body:   `{"version":`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown schema",
			path:   "/schemas/album/validate",
			body:   `{}`,
			status: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType := tt.contentType
			if contentType == "" {
				contentType = "application/json"
			}
			resp, err := http.Post(ts.URL+tt.path, contentType, strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tt.status, resp.StatusCode)
			if tt.status != http.StatusOK && tt.status != http.StatusUnprocessableEntity {
				return
			}

			var out ValidationResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, tt.status == http.StatusOK, out.Valid)
			var keywords []string
			for _, v := range out.Errors {
				keywords = append(keywords, v.Keyword)
			}
			assert.Equal(t, tt.keywords, keywords)
		})
	}
}

func TestValidateFailFast(t *testing.T) {
	ts := newTestServer(t, schema.WithFailFast())
	resp, err := http.Post(ts.URL+"/schemas/track/validate", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out ValidationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Errors, 1)
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.NewString()
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderRequestID, id)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, id, resp.Header.Get(HeaderRequestID))
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/schemas/track/validate")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServeStopsOnCancel(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
