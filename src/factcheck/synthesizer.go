package factcheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/truthlens/truthlens/src/ai/core"
)

const verdictPromptTemplate = `You are an expert, impartial fact-checker. Your sole job is to evaluate the user's claim against the provided real-time search evidence.

CLAIM TO VERIFY:
"%s"

REAL-TIME SEARCH EVIDENCE:
%s
%s

--- INSTRUCTIONS ---
1. Do NOT rely on your training data. Base your verdict ONLY on the evidence provided above.
2. Do NOT guess. If the evidence is insufficient, you MUST return UNVERIFIED with a confidenceScore of exactly 0.
3. THE JOURNALISTIC STANDARD: You do NOT need a dedicated "fact-check" article to verify a claim. If the REAL-TIME SEARCH EVIDENCE contains reports from standard, credible news outlets (e.g., Reuters, AP, BBC, The Guardian, NDTV, The Hindu, etc.) describing the event in the user's claim as actually happening, you MUST classify the verdict as "REAL". Only use "UNVERIFIED" if the search results show absolutely no mention of the event, or if the only sources are forums, social media comments, or low-credibility sites.
4. Determine the verdict based on the following criteria:
   - REAL: The evidence clearly supports the claim. (Assign a high confidenceScore, e.g., 80-100).
   - FAKE: The evidence clearly debunks the claim. (Assign a high confidenceScore, e.g., 80-100).
   - MISLEADING: The claim mixes truth and fiction or strips essential context. (Assign a moderate confidenceScore, e.g., 50-80).
   - UNVERIFIED: The evidence is insufficient or absent. (The confidenceScore MUST strictly be 0).

Respond with ONLY a valid JSON object in this exact format (no markdown, no extra text):
{
  "verdict": "REAL" | "FAKE" | "MISLEADING" | "UNVERIFIED",
  "confidenceScore": <number 0-100>,
  "explanation": "<2-3 sentence explanation referencing the evidence>",
  "extractedClaim": "%s",
  "sources": [
    { "title": "<source title>", "url": "<source url>", "snippet": "<brief snippet>" }
  ]
}`

// Synthesizer produces the structured verdict from claim plus evidence.
type Synthesizer struct {
	ai core.Client
}

func NewSynthesizer(ai core.Client) *Synthesizer {
	return &Synthesizer{ai: ai}
}

func (s *Synthesizer) Synthesize(ctx context.Context, claim string, evidence EvidenceSet) (*Verdict, error) {
	prompt := buildVerdictPrompt(claim, evidence)

	out, err := s.ai.Respond(ctx, prompt, core.Options{})
	if err != nil {
		return nil, &SynthesisError{Reason: "model call failed", Cause: err}
	}

	verdict, err := parseVerdict(out)
	if err != nil {
		return nil, err
	}

	normalizeVerdict(verdict, claim)
	if !knownLabel(verdict.Label) {
		return nil, &SynthesisError{Reason: fmt.Sprintf("unknown verdict label %q", verdict.Label)}
	}
	return verdict, nil
}

func buildVerdictPrompt(claim string, evidence EvidenceSet) string {
	var transcript strings.Builder
	for i, item := range evidence.Items {
		if i > 0 {
			transcript.WriteString("\n\n")
		}
		fmt.Fprintf(&transcript, "[Source %d] %q\nURL: %s\nSnippet: %s", i+1, item.Title, item.URL, item.Snippet)
	}

	summary := transcript.String()
	if summary == "" {
		summary = "No search results found."
	}

	answer := ""
	if evidence.Answer != "" {
		answer = "\nSearch provider synthesised answer: " + evidence.Answer
	}

	return fmt.Sprintf(verdictPromptTemplate, claim, summary, answer, claim)
}

// normalizeVerdict enforces the contract the prompt only asks for: the label
// is upper-cased, confidence is clamped into [0,100], UNVERIFIED always
// carries confidence 0, and the claim is echoed even if the model dropped it.
func normalizeVerdict(v *Verdict, claim string) {
	v.Label = VerdictLabel(strings.ToUpper(strings.TrimSpace(string(v.Label))))

	if v.ConfidenceScore < 0 {
		v.ConfidenceScore = 0
	}
	if v.ConfidenceScore > 100 {
		v.ConfidenceScore = 100
	}
	if v.Label == VerdictUnverified {
		v.ConfidenceScore = 0
	}

	if strings.TrimSpace(v.Claim) == "" {
		v.Claim = claim
	}
	if v.Sources == nil {
		v.Sources = []EvidenceItem{}
	}
}

func knownLabel(label VerdictLabel) bool {
	switch label {
	case VerdictReal, VerdictFake, VerdictMisleading, VerdictUnverified:
		return true
	}
	return false
}
