package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/example/quizbot/internal/bot"
	"github.com/example/quizbot/internal/database"
	"github.com/example/quizbot/internal/excel"
	"github.com/example/quizbot/internal/lexicon"
	"github.com/example/quizbot/internal/quiz"
	"github.com/example/quizbot/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// .env необязателен: в проде настройки приходят из окружения
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Создаем канал для сигналов
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загружаем словарь один раз при старте; без словаря бот не работает
	lex, err := loadLexicon()
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	log.Printf("Loaded %d words", lex.Len())

	store, err := openStore()
	if err != nil {
		log.Fatalf("Failed to open progress store: %v", err)
	}
	defer database.Close()

	engine := quiz.NewEngine(lex, store)

	b, err := bot.New(engine, store)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	// Горутина для обработки сигналов
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		b.Stop()
		cancel()
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot error: %v", err)
	}
	log.Println("Bot stopped successfully")
}

// loadLexicon reads the word list named by WORDS_FILE (words.json by
// default). JSON is the native format; .xlsx and .csv word lists are
// supported through the excel loader.
func loadLexicon() (*lexicon.Lexicon, error) {
	path := os.Getenv("WORDS_FILE")
	if path == "" {
		path = "words.json"
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls", ".csv":
		return excel.LoadLexicon(excel.DefaultLoadConfig(path))
	default:
		return lexicon.LoadFile(path)
	}
}

// openStore selects the progress store backend: STORAGE=file keeps one
// JSON file per user, anything else uses the database
func openStore() (storage.Store, error) {
	if os.Getenv("STORAGE") == "file" {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		return storage.NewFileStore(dataDir)
	}

	if err := database.Connect(); err != nil {
		return nil, err
	}
	return database.NewSessionRepository(), nil
}
