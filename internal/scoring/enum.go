package scoring

import "strings"

type Recommendation string

const (
	RecommendationAccept Recommendation = "accept"
	RecommendationReview Recommendation = "review"
	RecommendationReject Recommendation = "reject"
)

const (
	ActionScoreApplication = "score_application"
	ActionEvaluatePitch    = "evaluate_pitch"
)

// normalizeRecommendation maps free-form model output onto the three known
// values. Unknown input falls back to what the score suggests.
func normalizeRecommendation(s string, score int) Recommendation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accept", "accepted", "approve", "approved", "admit", "yes":
		return RecommendationAccept
	case "review", "maybe", "waitlist", "interview", "manual_review":
		return RecommendationReview
	case "reject", "rejected", "decline", "declined", "deny", "no":
		return RecommendationReject
	}
	return recommendationFor(score)
}

func recommendationFor(score int) Recommendation {
	switch {
	case score >= 75:
		return RecommendationAccept
	case score >= 45:
		return RecommendationReview
	default:
		return RecommendationReject
	}
}
