package factcheck

import (
	"context"
	"fmt"
	"log"

	"github.com/truthlens/truthlens/src/ai/core"
)

// Service sequences the four pipeline stages. Each Run is fully isolated;
// one Service handles any number of concurrent requests.
type Service struct {
	extractor   *Extractor
	optimizer   *Optimizer
	retriever   *Retriever
	synthesizer *Synthesizer
}

func NewService(ai core.Client, searcher Searcher) *Service {
	return &Service{
		extractor:   NewExtractor(ai),
		optimizer:   NewOptimizer(ai),
		retriever:   NewRetriever(searcher),
		synthesizer: NewSynthesizer(ai),
	}
}

// Run executes extract -> optimize -> search -> synthesize. Extraction and
// synthesis failures are fatal for the request; optimization and search
// degrade per their own policies.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	var (
		claim string
		err   error
	)

	switch req.Kind {
	case InputImage:
		claim, err = s.extractor.ExtractImage(ctx, req.ImageData, req.ImageMime)
	case InputText:
		claim, err = s.extractor.ExtractText(ctx, req.Text)
	default:
		return nil, fmt.Errorf("factcheck: unknown input kind %q", req.Kind)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("Extracted claim: %s", claim)
	log.Printf("Search mode: %s", req.Mode)

	query := s.optimizer.Optimize(ctx, claim)

	evidence := s.retriever.Search(ctx, query, req.Mode)
	log.Printf("Found %d search results", len(evidence.Items))

	verdict, err := s.synthesizer.Synthesize(ctx, claim, evidence)
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:    req.Kind,
		Claim:   claim,
		Verdict: *verdict,
	}, nil
}
