package factcheck

import (
	"context"
	"strings"

	"github.com/truthlens/truthlens/src/ai/core"
	"github.com/truthlens/truthlens/src/search/tavily"
)

// fakeAI routes prompts to canned behavior per pipeline stage, keyed on the
// instruction text each stage embeds in its prompt.
type fakeAI struct {
	extractOut string
	extractErr error

	optimizeOut string
	optimizeErr error

	synthesizeOut string
	synthesizeErr error

	visionOut string
	visionErr error

	prompts       []string
	visionPrompts []string
	visionImages  [][]byte
	visionMimes   []string
}

func (f *fakeAI) Respond(ctx context.Context, input string, opts core.Options) (string, error) {
	f.prompts = append(f.prompts, input)
	switch {
	case strings.Contains(input, "claim extraction assistant"):
		return f.extractOut, f.extractErr
	case strings.Contains(input, "search engine operator"):
		return f.optimizeOut, f.optimizeErr
	case strings.Contains(input, "impartial fact-checker"):
		return f.synthesizeOut, f.synthesizeErr
	}
	return "", nil
}

func (f *fakeAI) RespondVision(ctx context.Context, input string, image []byte, mimeType string, opts core.Options) (string, error) {
	f.visionPrompts = append(f.visionPrompts, input)
	f.visionImages = append(f.visionImages, image)
	f.visionMimes = append(f.visionMimes, mimeType)
	return f.visionOut, f.visionErr
}

// lastPromptContaining returns the most recent prompt holding the marker.
func (f *fakeAI) lastPromptContaining(marker string) string {
	for i := len(f.prompts) - 1; i >= 0; i-- {
		if strings.Contains(f.prompts[i], marker) {
			return f.prompts[i]
		}
	}
	return ""
}

// fakeSearcher records the request it was given and returns a fixed response.
type fakeSearcher struct {
	resp  *tavily.SearchResponse
	err   error
	reqs  []tavily.SearchRequest
	calls int
}

func (f *fakeSearcher) Search(ctx context.Context, req tavily.SearchRequest) (*tavily.SearchResponse, error) {
	f.calls++
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return &tavily.SearchResponse{}, nil
}
