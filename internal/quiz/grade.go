package quiz

import "github.com/example/quizbot/pkg/models"

// Percentage returns the share of correct answers, 0 for an empty score
func Percentage(score models.Score) float64 {
	if score.Total == 0 {
		return 0
	}
	return float64(score.Correct) / float64(score.Total) * 100
}

// GradeFor buckets a percentage into a knowledge grade. Boundaries are
// inclusive on the lower end: exactly 50% is already satisfactory.
func GradeFor(percentage float64) models.Grade {
	switch {
	case percentage < 50:
		return models.GradeUnsatisfactory
	case percentage < 70:
		return models.GradeSatisfactory
	case percentage < 90:
		return models.GradeGood
	default:
		return models.GradeExcellent
	}
}
