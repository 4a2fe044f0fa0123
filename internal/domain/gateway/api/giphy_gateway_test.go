package api

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"gif-api/internal/domain/model"
	"gif-api/pkg/http"
)

func TestGetByID_MapsRecord(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/v1/gifs/xT4uQulxzV39haRFjG", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"xT4uQulxzV39haRFjG","url":"https://giphy.com/gifs/xT4uQulxzV39haRFjG","title":"Excited GIF","images":{"downsized_medium":{"url":"https://media.giphy.com/downsized.gif"}}}}`))
	}))
	defer server.Close()

	gateway := NewGiphyGateway(server.URL, "/v1/gifs", "/v1/gifs/search", "test-key", http.ClientOptions{})

	gif, err := gateway.GetByID("xT4uQulxzV39haRFjG")

	assert.NoError(t, err)
	assert.Equal(t, "xT4uQulxzV39haRFjG", gif.ID)
	assert.Equal(t, "https://giphy.com/gifs/xT4uQulxzV39haRFjG", gif.URL)
	assert.Equal(t, "Excited GIF", gif.Title)
}

func TestGetByID_FallsBackToDownsizedMedium(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"abc","title":"No Top URL","images":{"downsized_medium":{"url":"https://media.giphy.com/downsized.gif"}}}}`))
	}))
	defer server.Close()

	gateway := NewGiphyGateway(server.URL, "/v1/gifs", "/v1/gifs/search", "test-key", http.ClientOptions{})

	gif, err := gateway.GetByID("abc")

	assert.NoError(t, err)
	assert.Equal(t, "https://media.giphy.com/downsized.gif", gif.URL)
}

func TestGetByID_EmptyRecordIsNotFound(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	gateway := NewGiphyGateway(server.URL, "/v1/gifs", "/v1/gifs/search", "test-key", http.ClientOptions{})

	gif, err := gateway.GetByID("missing")

	assert.NoError(t, err)
	assert.Nil(t, gif)
}

func TestGetByID_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Invalid authentication credentials"}`))
	}))
	defer server.Close()

	gateway := NewGiphyGateway(server.URL, "/v1/gifs", "/v1/gifs/search", "bad-key", http.ClientOptions{})

	gif, err := gateway.GetByID("abc")

	assert.Nil(t, gif)
	assert.ErrorIs(t, err, model.ErrUpstream)
	assert.Contains(t, err.Error(), "Invalid authentication credentials")
}

func TestSearch_ParesRecords(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/v1/gifs/search", r.URL.Path)
		assert.Equal(t, "cats", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"a","url":"https://giphy.com/a","title":"A","rating":"g","type":"gif"},{"id":"b","title":"B","images":{"downsized_medium":{"url":"https://media.giphy.com/b.gif"}}}]}`))
	}))
	defer server.Close()

	gateway := NewGiphyGateway(server.URL, "/v1/gifs", "/v1/gifs/search", "test-key", http.ClientOptions{})

	gifs, err := gateway.Search("cats", 2)

	assert.NoError(t, err)
	assert.Len(t, gifs, 2)
	assert.Equal(t, "a", gifs[0].ID)
	assert.Equal(t, "https://giphy.com/a", gifs[0].URL)
	assert.Equal(t, "b", gifs[1].ID)
	assert.Equal(t, "https://media.giphy.com/b.gif", gifs[1].URL)
}

func TestSearch_EmptyResult(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	gateway := NewGiphyGateway(server.URL, "/v1/gifs", "/v1/gifs/search", "test-key", http.ClientOptions{})

	gifs, err := gateway.Search("zzz", 10)

	assert.NoError(t, err)
	assert.Empty(t, gifs)
}
