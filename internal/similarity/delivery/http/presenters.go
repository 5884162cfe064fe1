package http

import (
	"alpaca-ollama/internal/similarity"
)

// --- Request DTOs ---

type rankReq struct {
	Query     string   `json:"query"`
	Sentences []string `json:"sentences"`
}

func (r rankReq) toInput() similarity.RankInput {
	return similarity.RankInput{
		Query:      r.Query,
		Candidates: r.Sentences,
	}
}

// --- Response DTOs ---

type comparisonResp struct {
	Index      int      `json:"index"`
	Sentence   string   `json:"sentence"`
	Similarity *float64 `json:"similarity"`
}

func newComparisonResp(c similarity.ComparisonResult) comparisonResp {
	return comparisonResp{
		Index:      c.Index,
		Sentence:   c.Text,
		Similarity: c.Score,
	}
}

type rankResp struct {
	Query       string           `json:"query"`
	Comparisons []comparisonResp `json:"comparisons"`
	Best        *comparisonResp  `json:"best"`
}

func (h *handler) newRankResp(out similarity.Report) rankResp {
	comparisons := make([]comparisonResp, len(out.Comparisons))
	for i, c := range out.Comparisons {
		comparisons[i] = newComparisonResp(c)
	}

	resp := rankResp{
		Query:       out.Query,
		Comparisons: comparisons,
	}
	if out.Best != nil {
		best := newComparisonResp(*out.Best)
		resp.Best = &best
	}
	return resp
}
