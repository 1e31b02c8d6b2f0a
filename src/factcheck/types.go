package factcheck

// InputKind distinguishes what the user submitted.
type InputKind string

const (
	InputText  InputKind = "text"
	InputImage InputKind = "image"
)

// SearchMode selects the evidence retrieval policy.
type SearchMode string

const (
	// ModeOfficial restricts evidence to an allow-list of credible outlets.
	ModeOfficial SearchMode = "official"
	// ModeGlobal searches the whole web minus low-credibility forums.
	ModeGlobal SearchMode = "global"
)

// VerdictLabel is the final judgement on a claim.
type VerdictLabel string

const (
	VerdictReal       VerdictLabel = "REAL"
	VerdictFake       VerdictLabel = "FAKE"
	VerdictMisleading VerdictLabel = "MISLEADING"
	VerdictUnverified VerdictLabel = "UNVERIFIED"
)

// Request is one verification job. Exactly one of Text/ImageData is set;
// the HTTP layer validates that before the pipeline runs.
type Request struct {
	Kind      InputKind
	Text      string
	ImageData []byte
	ImageMime string
	Mode      SearchMode
}

// EvidenceItem is one normalized search hit, in provider relevance order.
type EvidenceItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// EvidenceSet holds the evidence consulted for a claim. Empty is a valid,
// meaningful state: it drives the UNVERIFIED verdict.
type EvidenceSet struct {
	Items  []EvidenceItem
	Answer string
}

// Verdict is the structured judgement the synthesizer model must emit.
type Verdict struct {
	Label           VerdictLabel   `json:"verdict"`
	ConfidenceScore int            `json:"confidenceScore"`
	Explanation     string         `json:"explanation"`
	Claim           string         `json:"extractedClaim"`
	Sources         []EvidenceItem `json:"sources"`
}

// Result is the pipeline output handed to the persistence layer.
type Result struct {
	Kind    InputKind
	Claim   string
	Verdict Verdict
}
