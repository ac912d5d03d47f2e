package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/quizbot/internal/storage"
	"github.com/go-co-op/gocron"
)

// Константы для настроек напоминаний по умолчанию
const (
	DefaultNotificationStartHour = 9  // Время начала напоминаний (9:00)
	DefaultNotificationEndHour   = 21 // Время окончания напоминаний (21:00)

	// DefaultDormantAfter is how long a saved session may sit untouched
	// before its owner gets a practice reminder
	DefaultDormantAfter = 24 * time.Hour
)

// Notifier interface for sending practice reminders
type Notifier interface {
	SendPracticeReminder(userID int64) error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler    *gocron.Scheduler
	store        storage.Store
	notifier     Notifier
	dormantAfter time.Duration

	// reminded tracks who already got a nudge for the current dormant
	// period so a user isn't pinged every hour
	reminded map[int64]time.Time
}

// New creates a new scheduler instance
func New(store storage.Store, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler:    gocron.NewScheduler(time.UTC),
		store:        store,
		notifier:     notifier,
		dormantAfter: DefaultDormantAfter,
		reminded:     make(map[int64]time.Time),
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Schedule hourly check for users with dormant sessions
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders finds users whose saved session went dormant and
// nudges them to keep practicing
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	startHour := envHour("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	// Проверяем, находится ли текущий час в диапазоне для напоминаний
	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	ctx := context.Background()
	users, err := s.store.Users(ctx)
	if err != nil {
		log.Printf("Error listing users for reminders: %v", err)
		return
	}

	now := time.Now().UTC()
	for _, userID := range users {
		session, err := s.store.Load(ctx, userID)
		if err != nil {
			log.Printf("Error loading session for user %d: %v", userID, err)
			continue
		}

		if now.Sub(session.UpdatedAt) < s.dormantAfter {
			continue
		}
		// Already reminded since the session last changed
		if t, ok := s.reminded[userID]; ok && t.After(session.UpdatedAt) {
			continue
		}

		if err := s.notifier.SendPracticeReminder(userID); err != nil {
			log.Printf("Error sending reminder to user %d: %v", userID, err)
			continue
		}
		s.reminded[userID] = now
	}
}

// RunManualCheck forces a reminder check for a specific user
func (s *Scheduler) RunManualCheck(userID int64) error {
	session, err := s.store.Load(context.Background(), userID)
	if err != nil {
		return err
	}

	if time.Now().UTC().Sub(session.UpdatedAt) >= s.dormantAfter {
		return s.notifier.SendPracticeReminder(userID)
	}
	return nil
}

// envHour reads an hour-of-day override from the environment
func envHour(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
