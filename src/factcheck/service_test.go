package factcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthlens/truthlens/src/search/tavily"
)

func TestRunTextPipeline(t *testing.T) {
	ai := &fakeAI{
		extractOut:  "The moon landing in 1969 was staged.",
		optimizeOut: "moon landing 1969 staged hoax",
		synthesizeOut: `{
			"verdict": "FAKE",
			"confidenceScore": 90,
			"explanation": "Credible outlets contradict the claim (Source 1).",
			"extractedClaim": "The moon landing in 1969 was staged.",
			"sources": [{"title": "Apollo 11 at 50", "url": "https://reuters.com/apollo", "snippet": "Astronauts landed in 1969."}]
		}`,
	}
	searcher := &fakeSearcher{resp: &tavily.SearchResponse{
		Results: []tavily.SearchResult{
			{Title: "Apollo 11 at 50", URL: "https://reuters.com/apollo", Content: "Astronauts landed in 1969."},
		},
	}}
	svc := NewService(ai, searcher)

	result, err := svc.Run(context.Background(), Request{
		Kind: InputText,
		Text: "someone says the moon landing was staged",
		Mode: ModeOfficial,
	})
	require.NoError(t, err)

	assert.Equal(t, InputText, result.Kind)
	assert.Equal(t, "The moon landing in 1969 was staged.", result.Claim)
	assert.Equal(t, VerdictFake, result.Verdict.Label)
	assert.Equal(t, result.Claim, result.Verdict.Claim)

	require.Len(t, searcher.reqs, 1)
	assert.Equal(t, "moon landing 1969 staged hoax", searcher.reqs[0].Query)
	assert.Equal(t, officialDomains, searcher.reqs[0].IncludeDomains)
}

func TestRunImagePipeline(t *testing.T) {
	ai := &fakeAI{
		visionOut:   "A viral image claims the Eiffel Tower is melting.",
		optimizeOut: "Eiffel Tower melting viral image",
		synthesizeOut: `{
			"verdict": "MISLEADING",
			"confidenceScore": 65,
			"explanation": "The heatwave photo is real but the melting claim is satire.",
			"extractedClaim": "A viral image claims the Eiffel Tower is melting.",
			"sources": []
		}`,
	}
	searcher := &fakeSearcher{}
	svc := NewService(ai, searcher)

	result, err := svc.Run(context.Background(), Request{
		Kind:      InputImage,
		ImageData: []byte{0xFF, 0xD8, 0xFF},
		ImageMime: "image/jpeg",
		Mode:      ModeGlobal,
	})
	require.NoError(t, err)

	assert.Equal(t, InputImage, result.Kind)
	assert.Equal(t, VerdictMisleading, result.Verdict.Label)
	require.Len(t, ai.visionImages, 1)
	require.Len(t, searcher.reqs, 1)
	assert.Equal(t, excludedForums, searcher.reqs[0].ExcludeDomains)
}

func TestRunOptimizerFailureSearchesWithRawClaim(t *testing.T) {
	claim := "The moon landing in 1969 was staged."
	ai := &fakeAI{
		extractOut:  claim,
		optimizeErr: errors.New("optimizer down"),
		synthesizeOut: `{"verdict": "UNVERIFIED", "confidenceScore": 0, "explanation": "No evidence.", "extractedClaim": "x", "sources": []}`,
	}
	searcher := &fakeSearcher{}
	svc := NewService(ai, searcher)

	_, err := svc.Run(context.Background(), Request{Kind: InputText, Text: "moon", Mode: ModeOfficial})
	require.NoError(t, err)

	require.Len(t, searcher.reqs, 1)
	assert.Equal(t, claim, searcher.reqs[0].Query)
}

func TestRunSearchFailureStillProducesVerdict(t *testing.T) {
	ai := &fakeAI{
		extractOut:  "An obscure claim nobody has covered.",
		optimizeOut: "obscure claim coverage",
		synthesizeOut: `{
			"verdict": "UNVERIFIED",
			"confidenceScore": 0,
			"explanation": "No evidence was found for this claim.",
			"extractedClaim": "An obscure claim nobody has covered.",
			"sources": []
		}`,
	}
	searcher := &fakeSearcher{err: errors.New("provider timeout")}
	svc := NewService(ai, searcher)

	result, err := svc.Run(context.Background(), Request{Kind: InputText, Text: "obscure", Mode: ModeOfficial})
	require.NoError(t, err, "search failure must not fail the pipeline")

	assert.Equal(t, VerdictUnverified, result.Verdict.Label)
	assert.Equal(t, 0, result.Verdict.ConfidenceScore)

	prompt := ai.lastPromptContaining("impartial fact-checker")
	assert.Contains(t, prompt, "No search results found.")
}

func TestRunExtractionFailureAbortsPipeline(t *testing.T) {
	ai := &fakeAI{extractErr: errors.New("model down")}
	searcher := &fakeSearcher{}
	svc := NewService(ai, searcher)

	_, err := svc.Run(context.Background(), Request{Kind: InputText, Text: "x", Mode: ModeOfficial})
	require.Error(t, err)

	var extractErr *ExtractionError
	assert.True(t, errors.As(err, &extractErr))
	assert.Zero(t, searcher.calls, "no search may run without a claim")
}

func TestRunSynthesisFailureIsFatal(t *testing.T) {
	ai := &fakeAI{
		extractOut:    "Some claim.",
		optimizeOut:   "some claim",
		synthesizeOut: "not json at all",
	}
	svc := NewService(ai, &fakeSearcher{})

	_, err := svc.Run(context.Background(), Request{Kind: InputText, Text: "x", Mode: ModeGlobal})
	require.Error(t, err)

	var synthErr *SynthesisError
	assert.True(t, errors.As(err, &synthErr))
}

func TestRunUnknownInputKind(t *testing.T) {
	svc := NewService(&fakeAI{}, &fakeSearcher{})

	_, err := svc.Run(context.Background(), Request{Kind: InputKind("audio")})
	require.Error(t, err)
}
