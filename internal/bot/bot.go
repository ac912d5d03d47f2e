package bot

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/example/quizbot/internal/quiz"
	"github.com/example/quizbot/internal/scheduler"
	"github.com/example/quizbot/internal/storage"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// Bot represents the Telegram quiz bot application
type Bot struct {
	api              *tgbotapi.BotAPI
	token            string
	engine           *quiz.Engine
	schedulerEnabled bool
	scheduler        *scheduler.Scheduler
	store            storage.Store
}

// New creates a new bot instance
func New(engine *quiz.Engine, store storage.Store) (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	schedulerEnabled := os.Getenv("ENABLE_SCHEDULER") != "false"

	return &Bot{
		token:            token,
		engine:           engine,
		store:            store,
		schedulerEnabled: schedulerEnabled,
	}, nil
}

// Start initializes the bot and blocks handling updates until the context
// is cancelled
func (b *Bot) Start(ctx context.Context) error {
	botAPI, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}

	b.api = botAPI
	log.Printf("Authorized on account %s", botAPI.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)

	if b.schedulerEnabled {
		b.scheduler = scheduler.New(b.store, b)
		b.scheduler.Start()
		log.Println("Practice reminder scheduler started")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			// Один логический поток на событие; порядок ответов одного
			// пользователя обеспечивает блокировка внутри движка
			go b.handleUpdate(ctx, update)
		}
	}
}

// Stop gracefully stops the bot
func (b *Bot) Stop() {
	if b.scheduler != nil {
		b.scheduler.Stop()
	}
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	log.Println("Bot stopped")
}

// SendPracticeReminder implements the scheduler.Notifier interface
func (b *Bot) SendPracticeReminder(userID int64) error {
	// В личных чатах Telegram chat ID совпадает с user ID
	msg := tgbotapi.NewMessage(userID, "Давно не виделись! Продолжите тренировку — отправьте перевод текущего слова или начните заново командой /start.")
	_, err := b.api.Send(msg)
	if err != nil {
		log.Printf("Error sending reminder to user %d: %v", userID, err)
	}
	return err
}

// handleUpdate handles a single incoming update from Telegram
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil:
		b.handleAnswer(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

// mainMenuButtons returns the buttons shown after /start
func (b *Bot) mainMenuButtons() [][]MenuButton {
	return [][]MenuButton{
		{{Text: "Начать игру", CallbackData: "start_game"}},
		{{Text: "Правила", CallbackData: "rules"}},
	}
}

// difficultyButtons returns the difficulty selection keyboard
func (b *Bot) difficultyButtons() [][]MenuButton {
	return [][]MenuButton{
		{{Text: "Начальный", CallbackData: "difficulty_beginner"}},
		{{Text: "Средний", CallbackData: "difficulty_intermediate"}},
		{{Text: "Продвинутый", CallbackData: "difficulty_advanced"}},
	}
}
