package factcheck

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/truthlens/truthlens/src/ai/core"
)

const optimizePrompt = `You are an expert search engine operator. Your job is to take a user's claim and convert it into a highly specific, 5-to-7 word search query to find relevant news articles.
Extract only the most unique keywords (location, names, specific action, unique objects).
Do NOT use full sentences or filler words.

Examples:
- Bad: "The prime minister announced today at the rally that all taxes on imported electric vehicles will be removed starting next month."
- Good: "Prime minister removes electric vehicle import tax"

USER CLAIM: %s

OUTPUT ONLY THE SEARCH QUERY (5-7 words, no punctuation, no quotes):`

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// Optimizer compresses a claim into a short keyword query. It never fails
// the pipeline: on any model error the claim itself is the query.
type Optimizer struct {
	ai core.Client
}

func NewOptimizer(ai core.Client) *Optimizer {
	return &Optimizer{ai: ai}
}

func (o *Optimizer) Optimize(ctx context.Context, claim string) string {
	out, err := o.ai.Respond(ctx, fmt.Sprintf(optimizePrompt, claim), core.Options{})
	if err != nil {
		log.Printf("Query optimisation failed, using raw claim as fallback: %v", err)
		return claim
	}

	optimized := quoteStripper.Replace(strings.TrimSpace(out))
	if optimized == "" {
		log.Printf("Query optimisation returned empty output, using raw claim as fallback")
		return claim
	}

	log.Printf("Optimized search query: %q", optimized)
	return optimized
}
