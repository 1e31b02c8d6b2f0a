package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSendsPayload(t *testing.T) {
	var got SearchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(SearchResponse{
			Results: []SearchResult{{Title: "Apollo 11", URL: "https://reuters.com/a", Content: "landed in 1969"}},
			Answer:  "The landing happened.",
		})
	}))
	defer srv.Close()

	c := NewClient("tvly-test-key", srv.URL)
	resp, err := c.Search(context.Background(), SearchRequest{
		Query:          "moon landing staged",
		SearchDepth:    "advanced",
		IncludeAnswer:  true,
		MaxResults:     5,
		IncludeDomains: []string{"reuters.com", "apnews.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, "tvly-test-key", got.APIKey)
	assert.Equal(t, "moon landing staged", got.Query)
	assert.Equal(t, "advanced", got.SearchDepth)
	assert.True(t, got.IncludeAnswer)
	assert.False(t, got.IncludeRawContent)
	assert.Equal(t, 5, got.MaxResults)
	assert.Equal(t, []string{"reuters.com", "apnews.com"}, got.IncludeDomains)
	assert.Empty(t, got.ExcludeDomains)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Apollo 11", resp.Results[0].Title)
	assert.Equal(t, "The landing happened.", resp.Answer)
}

func TestSearchSendsExcludeDomains(t *testing.T) {
	var got SearchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(SearchResponse{})
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	_, err := c.Search(context.Background(), SearchRequest{
		Query:          "anything",
		ExcludeDomains: []string{"reddit.com", "quora.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"reddit.com", "quora.com"}, got.ExcludeDomains)
	assert.Empty(t, got.IncludeDomains)
}

func TestSearchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	_, err := c.Search(context.Background(), SearchRequest{Query: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL)
	_, err := c.Search(context.Background(), SearchRequest{Query: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestSearchDefaultBaseURL(t *testing.T) {
	c := NewClient("k", "")
	assert.Equal(t, defaultBaseURL, c.baseURL)
}
