package similarity

// Comparison outcomes reported to the Observer.
const (
	OutcomeScored   = "scored"
	OutcomeFailed   = "failed"
	OutcomeMismatch = "mismatch"
)

// --- UseCase Inputs ---

type RankInput struct {
	Query      string
	Candidates []string
}

// --- UseCase Outputs ---

// ComparisonResult scores one candidate. Score is nil when the candidate
// could not be embedded or its dimension differs from the query's.
type ComparisonResult struct {
	Index int      `json:"index"`
	Text  string   `json:"sentence"`
	Score *float64 `json:"similarity"`
}

// Report holds one ComparisonResult per candidate, in input order.
// Best is nil when no candidate has a score.
type Report struct {
	Query       string             `json:"query"`
	Comparisons []ComparisonResult `json:"comparisons"`
	Best        *ComparisonResult  `json:"best"`
}
