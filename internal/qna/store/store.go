package store

import (
	"context"
	"errors"
	"time"

	"github.com/scholarhub/backend/internal/qna/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Questions() Questions
	Answers() Answers
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle multi-step writes (e.g. answer + its
	// notification message).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// A taken username returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Questions interface {
	// GetQuestionByID returns a question by id.
	GetQuestionByID(ctx context.Context, id string) (domain.Question, error)

	// ListQuestions returns all questions joined with the asker's username,
	// in insertion order.
	ListQuestions(ctx context.Context) ([]domain.QuestionWithAsker, error)

	// CreateQuestion inserts a new question.
	CreateQuestion(ctx context.Context, q domain.Question) error

	// UpdateQuestion overwrites title and content and bumps updated_at.
	UpdateQuestion(ctx context.Context, id, title, content string, updatedAt time.Time) error

	// DeleteQuestion removes a question; answers cascade per schema.
	DeleteQuestion(ctx context.Context, id string) error
}

type Answers interface {
	// GetAnswerByID returns an answer by id.
	GetAnswerByID(ctx context.Context, id string) (domain.Answer, error)

	// ListAnswersByQuestion returns a question's answers joined with the
	// answerer's username, in insertion order.
	ListAnswersByQuestion(ctx context.Context, questionID string) ([]domain.AnswerWithAnswerer, error)

	// CreateAnswer inserts a new answer.
	CreateAnswer(ctx context.Context, a domain.Answer) error

	// UpdateAnswerContent overwrites content and bumps updated_at.
	UpdateAnswerContent(ctx context.Context, id, content string, updatedAt time.Time) error

	// DeleteAnswer removes an answer.
	DeleteAnswer(ctx context.Context, id string) error
}

type Messages interface {
	// CreateMessage inserts a notification message.
	CreateMessage(ctx context.Context, m domain.Message) error

	// ListMessagesByReceiver returns a user's messages, newest first.
	ListMessagesByReceiver(ctx context.Context, receiverID string) ([]domain.Message, error)

	// MarkMessageRead flips read for one of the receiver's messages.
	MarkMessageRead(ctx context.Context, id, receiverID string) error

	// DeleteReadMessagesBefore removes read messages created before the
	// cutoff. Housekeeping.
	DeleteReadMessagesBefore(ctx context.Context, cutoff time.Time) error
}
