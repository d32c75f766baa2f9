package dto

import "raidbook/api/services/similarity"

// SimilarChampion is one ranked similarity result.
type SimilarChampion struct {
	Champion        *ChampionSummary `json:"champion"`
	Score           float64          `json:"score"`
	SharedStrengths []string         `json:"shared_strengths"`
}

// FromRankResults converts the ranker output to the response shape.
func FromRankResults(results []similarity.Result) []*SimilarChampion {
	out := make([]*SimilarChampion, 0, len(results))
	for _, r := range results {
		out = append(out, &SimilarChampion{
			Champion:        NewChampionSummary(r.Champion),
			Score:           r.Score,
			SharedStrengths: r.SharedStrengths,
		})
	}
	return out
}
