package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/example/quizbot/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const rulesText = `Правила игры:
1. Бот будет давать вам русские слова.
2. Ваша задача - написать их английский перевод.
3. За каждый правильный ответ вы получаете очко.
4. Синонимы также засчитываются как правильный ответ.
5. После каждого ответа вы видите оценку вашего знания английского.
Удачи!

Для начала игры напишите /start`

// handleCommand handles bot commands
func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "rules":
		b.send(tgbotapi.NewMessage(message.Chat.ID, rulesText))
	default:
		b.send(tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используйте /start, чтобы начать игру."))
	}
}

// handleStart greets the user and shows the main menu
func (b *Bot) handleStart(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID,
		"Добро пожаловать в игру для изучения английских слов! Выберите действие:")
	msg.ReplyMarkup = createKeyboard(b.mainMenuButtons())
	b.send(msg)
}

// handleCallbackQuery handles button presses
func (b *Bot) handleCallbackQuery(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	// Убираем "часики" на кнопке
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("Error answering callback query: %v", err)
	}

	chatID := callback.Message.Chat.ID
	userID := callback.From.ID

	switch {
	case callback.Data == "start_game":
		edit := tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID, "Выберите уровень сложности:")
		markup := createKeyboard(b.difficultyButtons())
		edit.ReplyMarkup = &markup
		b.request(edit)
	case callback.Data == "rules":
		b.request(tgbotapi.NewEditMessageText(chatID, callback.Message.MessageID, rulesText))
	case strings.HasPrefix(callback.Data, "difficulty_"):
		tier := models.Difficulty(strings.TrimPrefix(callback.Data, "difficulty_"))
		b.startQuiz(ctx, chatID, userID, callback.Message.MessageID, tier)
	}
}

// startQuiz begins a new quiz at the chosen difficulty
func (b *Bot) startQuiz(ctx context.Context, chatID, userID int64, messageID int, tier models.Difficulty) {
	prompt, err := b.engine.SelectDifficulty(ctx, userID, tier)
	if err != nil {
		log.Printf("Error starting quiz for user %d: %v", userID, err)
		b.send(tgbotapi.NewMessage(chatID, "Не удалось начать игру. Попробуйте ещё раз."))
		return
	}

	b.request(tgbotapi.NewEditMessageText(chatID, messageID,
		fmt.Sprintf("Игра начинается! Переведите слово: %s", prompt)))
}

// handleAnswer evaluates a plain-text message as a quiz answer
func (b *Bot) handleAnswer(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	result, err := b.engine.SubmitAnswer(ctx, userID, message.Text)
	if errors.Is(err, models.ErrSessionNotStarted) {
		b.send(tgbotapi.NewMessage(chatID, "Пожалуйста, начните игру командой /start"))
		return
	}
	if errors.Is(err, models.ErrPersistence) {
		b.send(tgbotapi.NewMessage(chatID, "Не удалось сохранить ваш прогресс. Попробуйте ответить ещё раз."))
		return
	}
	if err != nil {
		log.Printf("Error handling answer from user %d: %v", userID, err)
		b.send(tgbotapi.NewMessage(chatID, "Что-то пошло не так. Попробуйте ещё раз."))
		return
	}

	b.send(tgbotapi.NewMessage(chatID, renderAnswer(result)))
}

// renderAnswer formats the engine's result for the chat
func renderAnswer(result *models.AnswerResult) string {
	var sb strings.Builder

	if result.Match.Correct {
		if result.Match.MatchedSynonym != "" {
			sb.WriteString(fmt.Sprintf("Правильно! '%s' - это синоним слова '%s'.",
				result.Match.MatchedSynonym, result.Match.Canonical))
		} else {
			sb.WriteString("Правильно!")
		}
	} else {
		sb.WriteString(fmt.Sprintf("Неправильно. Правильный ответ: %s", result.Match.Canonical))
	}

	sb.WriteString(fmt.Sprintf("\nВаш счет: %d/%d (%.1f%%) - %s",
		result.Score.Correct, result.Score.Total, result.Percentage, gradeText(result.Grade)))
	sb.WriteString(fmt.Sprintf("\nСледующее слово: %s", result.NextPrompt))

	return sb.String()
}

// gradeText maps a grade to its user-facing wording
func gradeText(grade models.Grade) string {
	switch grade {
	case models.GradeExcellent:
		return "отлично"
	case models.GradeGood:
		return "хорошо"
	case models.GradeSatisfactory:
		return "удовлетворительно"
	default:
		return "неудовлетворительно"
	}
}

// send delivers a message, logging delivery failures
func (b *Bot) send(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message to chat %d: %v", msg.ChatID, err)
	}
}

// request performs an API request whose response body we don't need
func (b *Bot) request(c tgbotapi.Chattable) {
	if _, err := b.api.Request(c); err != nil {
		log.Printf("Error performing bot API request: %v", err)
	}
}
