package service

import (
	"context"
	"errors"

	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/scholarhub/backend/internal/qna/store"
	"github.com/scholarhub/backend/pkg/qnasdk"
)

// MessageService reads and acknowledges a user's notification messages.
// Messages are written by AnswerService; this side is receiver-scoped only.
type MessageService struct {
	store store.Store
}

func NewMessageService(st store.Store) *MessageService {
	return &MessageService{store: st}
}

// List returns the actor's messages, newest first. Messages are not cached:
// they are per-user and read rarely compared to the public lists.
func (s *MessageService) List(ctx context.Context, actor domain.User) ([]qnasdk.MessageRecord, error) {
	rows, err := s.store.Messages().ListMessagesByReceiver(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	records := make([]qnasdk.MessageRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, qnasdk.MessageRecord{
			MessageID: row.ID,
			Content:   row.Content,
			Read:      row.Read,
			CreatedAt: row.CreatedAt.Format(qnasdk.TimeLayout),
		})
	}
	return records, nil
}

// MarkRead flips one of the actor's messages to read. A message id that
// exists but belongs to someone else reads as not found, so ids cannot be
// probed across users.
func (s *MessageService) MarkRead(ctx context.Context, actor domain.User, messageID string) error {
	if messageID == "" {
		return ErrMessageIDRequired
	}

	err := s.store.Messages().MarkMessageRead(ctx, messageID, actor.ID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrMessageNotFound
	}
	return err
}
