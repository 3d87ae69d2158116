package services

import (
	"context"
	"encoding/json"

	"github.com/dberzins/snippetflow/internal/logging"
	"github.com/dberzins/snippetflow/internal/server/models"
	"github.com/dberzins/snippetflow/internal/server/scoring"
)

// RecommendationService forwards a user id to the external scoring endpoint
// and maps the response into ranked results. It is a translation layer with
// no logic of its own.
type RecommendationService struct {
	client scoring.Client
	logger logging.Logger
}

func NewRecommendationService(client scoring.Client, logger logging.Logger) *RecommendationService {
	return &RecommendationService{client: client, logger: logger}
}

type scoringRequest struct {
	UserID int64 `json:"user_id"`
}

type scoringItem struct {
	SnippetID int64   `json:"snippet_id"`
	Score     float64 `json:"score"`
}

// GetRecommendations returns scored snippet references for userID. Transport,
// timeout and decoding failures all degrade to an empty slice: recommendations
// are non-critical and availability wins over completeness here. The failure
// is still visible to operators through the structured error log line.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID int64) []models.Recommendation {
	payload, err := json.Marshal(scoringRequest{UserID: userID})
	if err != nil {
		s.logger.Error(ctx, "error encoding scoring request", "user_id", userID, "error", err)
		return []models.Recommendation{}
	}

	body, err := s.client.Invoke(ctx, payload)
	if err != nil {
		s.logger.Error(ctx, "error calling scoring endpoint", "user_id", userID, "error", err)
		return []models.Recommendation{}
	}

	var items []scoringItem
	if err := json.Unmarshal(body, &items); err != nil {
		s.logger.Error(ctx, "error decoding scoring response", "user_id", userID, "error", err)
		return []models.Recommendation{}
	}

	recommendations := make([]models.Recommendation, 0, len(items))
	for _, item := range items {
		recommendations = append(recommendations, models.Recommendation{
			SnippetID: item.SnippetID,
			Score:     item.Score,
		})
	}
	return recommendations
}
