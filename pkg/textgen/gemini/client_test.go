package gemini_test

import (
	"context"
	"io"
	"net/http"
	"pragency/pkg/serrors"
	"pragency/pkg/textgen/gemini"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *gemini.Client {
	return gemini.New(&http.Client{Transport: fn}, "test-key", "gemini-pro")
}

func TestClient_Complete_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "generativelanguage.googleapis.com", r.URL.Host)
		require.Equal(t, "/v1beta/models/gemini-pro:generateContent", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "hello prompt")

		return &http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{"candidates":[{"content":{"parts":[{"text":"generated "},{"text":"text"}]}}]}`)),
		}, nil
	})

	text, err := c.Complete(context.Background(), "hello prompt")
	require.NoError(t, err)
	require.Equal(t, "generated text", text)
}

func TestClient_Complete_unconfiguredKey(t *testing.T) {
	called := false
	c := gemini.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		called = true

		return nil, nil
	})}, "", "")

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.False(t, called, "no network call should happen without an API key")
}

func TestClient_Complete_serverError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader(`{"error":{"message":"overloaded"}}`)),
		}, nil
	})

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "overloaded")
}

func TestClient_Complete_noCandidates(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"candidates":[]}`)),
		}, nil
	})

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no candidates")
}

func TestClient_Complete_malformedJSON(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{not json`)),
		}, nil
	})

	_, err := c.Complete(context.Background(), "prompt")
	require.Error(t, err)
}

func TestClient_Complete_defaultModelInURL(t *testing.T) {
	var gotPath string
	c := gemini.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path

		return &http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(strings.NewReader(
				`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`)),
		}, nil
	})}, "test-key", "")

	_, err := c.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "/v1beta/models/"+gemini.DefaultModel+":generateContent", gotPath)
}
