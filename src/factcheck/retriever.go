package factcheck

import (
	"context"
	"log"

	"github.com/truthlens/truthlens/src/search/tavily"
)

const maxSearchResults = 5

// officialDomains is the allow-list for ModeOfficial: fact-check sites,
// major wire services and a set of national outlets.
var officialDomains = []string{
	"snopes.com", "factcheck.org", "politifact.com",
	"reuters.com", "apnews.com", "bbc.com", "theguardian.com",
	"ndtv.com", "thehindu.com", "indiatoday.in", "hindustantimes.com",
}

// excludedForums is the deny-list for ModeGlobal: social and forum sites
// treated as low-credibility evidence.
var excludedForums = []string{
	"reddit.com", "quora.com", "twitter.com", "facebook.com", "instagram.com",
}

// Searcher is the web-search capability the retriever depends on. The one
// concrete adapter is tavily.Client; tests substitute fakes.
type Searcher interface {
	Search(ctx context.Context, req tavily.SearchRequest) (*tavily.SearchResponse, error)
}

// Retriever runs a domain-filtered evidence search. Provider failure is
// never fatal: absence of evidence is itself input to the verdict stage.
type Retriever struct {
	searcher Searcher
}

func NewRetriever(searcher Searcher) *Retriever {
	return &Retriever{searcher: searcher}
}

func (r *Retriever) Search(ctx context.Context, query string, mode SearchMode) EvidenceSet {
	req := tavily.SearchRequest{
		Query:             query,
		SearchDepth:       "advanced",
		IncludeAnswer:     true,
		IncludeRawContent: false,
		MaxResults:        maxSearchResults,
	}

	if mode == ModeGlobal {
		req.ExcludeDomains = excludedForums
	} else {
		req.IncludeDomains = officialDomains
	}

	resp, err := r.searcher.Search(ctx, req)
	if err != nil {
		log.Printf("Evidence search failed, treating as zero evidence: %v", err)
		return EvidenceSet{Items: []EvidenceItem{}}
	}

	items := make([]EvidenceItem, 0, len(resp.Results))
	for _, res := range resp.Results {
		snippet := res.Content
		if snippet == "" {
			snippet = res.Snippet
		}
		items = append(items, EvidenceItem{
			Title:   res.Title,
			URL:     res.URL,
			Snippet: snippet,
		})
	}

	return EvidenceSet{Items: items, Answer: resp.Answer}
}
