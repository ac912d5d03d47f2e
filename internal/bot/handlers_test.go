package bot

import (
	"testing"

	"github.com/example/quizbot/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderAnswerCorrect(t *testing.T) {
	text := renderAnswer(&models.AnswerResult{
		Match:      models.MatchResult{Correct: true, Canonical: "cat"},
		Score:      models.Score{Correct: 1, Total: 1},
		Percentage: 100,
		Grade:      models.GradeExcellent,
		NextPrompt: "собака",
	})

	assert.Contains(t, text, "Правильно!")
	assert.Contains(t, text, "1/1 (100.0%)")
	assert.Contains(t, text, "отлично")
	assert.Contains(t, text, "Следующее слово: собака")
}

func TestRenderAnswerSynonym(t *testing.T) {
	text := renderAnswer(&models.AnswerResult{
		Match:      models.MatchResult{Correct: true, Canonical: "cat", MatchedSynonym: "Kitty"},
		Score:      models.Score{Correct: 1, Total: 1},
		Percentage: 100,
		Grade:      models.GradeExcellent,
		NextPrompt: "кот",
	})

	assert.Contains(t, text, "'Kitty' - это синоним слова 'cat'")
}

func TestRenderAnswerWrong(t *testing.T) {
	text := renderAnswer(&models.AnswerResult{
		Match:      models.MatchResult{Correct: false, Canonical: "cat"},
		Score:      models.Score{Correct: 1, Total: 2},
		Percentage: 50,
		Grade:      models.GradeSatisfactory,
		NextPrompt: "кот",
	})

	assert.Contains(t, text, "Неправильно. Правильный ответ: cat")
	assert.Contains(t, text, "1/2 (50.0%)")
	assert.Contains(t, text, "удовлетворительно")
}

func TestGradeText(t *testing.T) {
	assert.Equal(t, "отлично", gradeText(models.GradeExcellent))
	assert.Equal(t, "хорошо", gradeText(models.GradeGood))
	assert.Equal(t, "удовлетворительно", gradeText(models.GradeSatisfactory))
	assert.Equal(t, "неудовлетворительно", gradeText(models.GradeUnsatisfactory))
}
