package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/quizbot/internal/lexicon"
	"github.com/example/quizbot/internal/storage"
	"github.com/example/quizbot/pkg/models"
)

// saveAttempts bounds the persistence retries per transition
const saveAttempts = 3

// retryDelay is the pause between persistence attempts
const retryDelay = 100 * time.Millisecond

// Engine owns the per-user session state machine. It keeps sessions in
// memory, rehydrates them from the progress store after a restart, and
// writes every transition back to the store before the in-memory state is
// allowed to advance.
type Engine struct {
	lex      *lexicon.Lexicon
	selector *Selector
	store    storage.Store

	mu       sync.Mutex
	sessions map[int64]*models.Session
	locks    map[int64]*sync.Mutex
}

// NewEngine creates an engine over the given lexicon and progress store
func NewEngine(lex *lexicon.Lexicon, store storage.Store) *Engine {
	return &Engine{
		lex:      lex,
		selector: NewSelector(lex),
		store:    store,
		sessions: make(map[int64]*models.Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Selector exposes the engine's difficulty selector
func (e *Engine) Selector() *Selector {
	return e.selector
}

// userLock returns the mutex serializing transitions for one user. Users
// never share a lock, so different users never block on each other.
func (e *Engine) userLock(userID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[userID] = lock
	}
	return lock
}

// SelectDifficulty starts (or restarts) a quiz for the user: resets the
// score, draws the first prompt and persists the new session. Allowed from
// any state — re-selecting a difficulty supersedes the old session.
// Returns the first prompt word.
func (e *Engine) SelectDifficulty(ctx context.Context, userID int64, tier models.Difficulty) (string, error) {
	if !tier.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", tier)
	}

	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	prompt, err := e.selector.Pick(tier)
	if err != nil {
		return "", err
	}

	session := &models.Session{
		UserID:        userID,
		Difficulty:    tier,
		CurrentPrompt: prompt,
		Score:         models.Score{},
		UpdatedAt:     time.Now().UTC(),
	}

	if err := e.persist(ctx, userID, session); err != nil {
		return "", err
	}

	e.mu.Lock()
	e.sessions[userID] = session
	e.mu.Unlock()

	return prompt, nil
}

// SubmitAnswer evaluates the user's answer against the current prompt,
// updates the score, draws the next prompt and persists the session. The
// in-memory session only advances after the durable write succeeds, so
// memory and store can not drift apart.
func (e *Engine) SubmitAnswer(ctx context.Context, userID int64, text string) (*models.AnswerResult, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, err := e.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := e.lex.Lookup(session.CurrentPrompt)
	if err != nil {
		// Слово из сессии исчезло из словаря — рассинхронизация данных
		return nil, fmt.Errorf("session prompt is missing from the lexicon: %w", err)
	}

	match := Evaluate(entry, text)

	next, err := e.selector.Pick(session.Difficulty)
	if err != nil {
		return nil, err
	}

	updated := *session
	updated.Score.Total++
	if match.Correct {
		updated.Score.Correct++
	}
	updated.CurrentPrompt = next
	updated.UpdatedAt = time.Now().UTC()

	if err := e.persist(ctx, userID, &updated); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.sessions[userID] = &updated
	e.mu.Unlock()

	percentage := Percentage(updated.Score)
	return &models.AnswerResult{
		Match:      match,
		Score:      updated.Score,
		Percentage: percentage,
		Grade:      GradeFor(percentage),
		NextPrompt: next,
	}, nil
}

// session returns the user's active session, rehydrating it from the
// progress store when the in-memory copy is gone (process restart). Must
// be called with the user's lock held.
func (e *Engine) session(ctx context.Context, userID int64) (*models.Session, error) {
	e.mu.Lock()
	session, ok := e.sessions[userID]
	e.mu.Unlock()
	if ok {
		return session, nil
	}

	session, err := e.store.Load(ctx, userID)
	if errors.Is(err, models.ErrSessionNotFound) {
		return nil, models.ErrSessionNotStarted
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session for user %d: %v", userID, err)
	}

	e.mu.Lock()
	e.sessions[userID] = session
	e.mu.Unlock()
	return session, nil
}

// persist writes the session with a bounded number of retries. Persistence
// is the only suspension point of a transition, so it must not loop
// forever on a broken store.
func (e *Engine) persist(ctx context.Context, userID int64, session *models.Session) error {
	var lastErr error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		lastErr = e.store.Save(ctx, userID, session)
		if lastErr == nil {
			return nil
		}
		log.Printf("Error saving session for user %d (attempt %d/%d): %v", userID, attempt, saveAttempts, lastErr)

		if attempt == saveAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return fmt.Errorf("%w: %v", models.ErrPersistence, lastErr)
}
