package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-token", 0)
}

func TestClient_DecodesListEnvelope(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"title":"Batik Basics","author":"Sari"}]}`))
	})

	courses, err := client.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Batik Basics", courses[0].Title)
	assert.Equal(t, "Sari", courses[0].Author)
}

func TestClient_UnauthorizedBecomesAuthExpired(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Questions(context.Background())
	assert.True(t, errors.Is(err, ErrAuthExpired))
}

func TestClient_ServerErrorCarriesBody(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"not_found","message":"course does not exist"}`))
	})

	_, err := client.Materials(context.Background(), 99)
	require.Error(t, err)

	var serr *ServerError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusNotFound, serr.StatusCode)
	assert.Equal(t, "not_found", serr.Code)
	assert.Equal(t, "course does not exist", serr.Message)
}

func TestClient_ServerErrorWithoutBody(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Courses(context.Background())

	var serr *ServerError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusInternalServerError, serr.StatusCode)
	assert.Empty(t, serr.Code)
}

func TestClient_ConnectionRefusedIsTransport(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing listening anymore

	client := NewClient(server.URL, "", 0)
	_, err := client.Courses(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))

	var terr *TransportError
	assert.ErrorAs(t, err, &terr)
}

func TestClient_DeleteReturnsMessage(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/karya/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"karya deleted"}`))
	})

	result, err := client.DeleteKarya(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "karya deleted", result.Message)
}

func TestClient_GetMeta(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meta", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"min_client_version":"1.2.0"}`))
	})

	meta, err := client.GetMeta(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", meta.MinClientVersion)
}
