package factcheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/truthlens/truthlens/src/ai/core"
)

const textClaimPrompt = `You are a claim extraction assistant.
Given the following text, extract the single most important factual claim that can be verified.
Return ONLY the claim as a single concise sentence. Nothing else.

TEXT:
"""
%s
"""`

const imageClaimPrompt = `You are an advanced OCR and context understanding assistant.
Analyse this image carefully.
1. Read all visible text in the image.
2. Understand the visual context (charts, photos, screenshots, memes, etc.).
3. Extract the single most important factual claim being made (either explicitly in text or implied by the image).
Return ONLY the claim as a single concise sentence. Nothing else.`

// Extractor turns raw input into one checkable claim sentence.
type Extractor struct {
	ai core.Client
}

func NewExtractor(ai core.Client) *Extractor {
	return &Extractor{ai: ai}
}

// ExtractText extracts a claim from free text. The model output is taken
// verbatim apart from whitespace trimming.
func (e *Extractor) ExtractText(ctx context.Context, text string) (string, error) {
	out, err := e.ai.Respond(ctx, fmt.Sprintf(textClaimPrompt, text), core.Options{})
	if err != nil {
		return "", &ExtractionError{Reason: "model call failed", Cause: err}
	}
	claim := strings.TrimSpace(out)
	if claim == "" {
		return "", &ExtractionError{Reason: "model returned empty claim"}
	}
	return claim, nil
}

// ExtractImage extracts a claim from an uploaded image via a multimodal call.
func (e *Extractor) ExtractImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", &ExtractionError{Reason: "empty image payload"}
	}
	out, err := e.ai.RespondVision(ctx, imageClaimPrompt, image, mimeType, core.Options{})
	if err != nil {
		return "", &ExtractionError{Reason: "vision model call failed", Cause: err}
	}
	claim := strings.TrimSpace(out)
	if claim == "" {
		return "", &ExtractionError{Reason: "model returned empty claim"}
	}
	return claim, nil
}
