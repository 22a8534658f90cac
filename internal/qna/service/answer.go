package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/scholarhub/backend/internal/qna/cache"
	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/scholarhub/backend/internal/qna/store"
	"github.com/scholarhub/backend/pkg/idx"
	"github.com/scholarhub/backend/pkg/qnasdk"
	"github.com/scholarhub/backend/pkg/slogx"
)

// AnswerService owns the answer lifecycle. Creating an answer also delivers
// a notification message to the question's asker; both rows land in one
// transaction so a notification never points at an answer that failed to
// persist.
type AnswerService struct {
	store  store.Store
	cache  cache.Cache
	ttl    time.Duration
	policy Policy
	now    func() time.Time
}

func NewAnswerService(st store.Store, c cache.Cache, ttl time.Duration) *AnswerService {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &AnswerService{
		store: st,
		cache: c,
		ttl:   ttl,
		now:   time.Now,
	}
}

// List returns one question's answers, oldest first, through the cache.
func (s *AnswerService) List(ctx context.Context, questionID string) ([]qnasdk.AnswerRecord, error) {
	if questionID == "" {
		return nil, ErrQuestionIDRequired
	}
	if _, err := s.store.Questions().GetQuestionByID(ctx, questionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	key := cache.AnswerListKey(questionID)

	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		slogx.FromContext(ctx).Warn("answer list cache read failed", "question_id", questionID, "error", err)
	} else if hit {
		var records []qnasdk.AnswerRecord
		if err := json.Unmarshal(raw, &records); err == nil {
			return records, nil
		}
		slogx.FromContext(ctx).Warn("answer list cache entry unreadable, recomputing", "error", err)
	}

	rows, err := s.store.Answers().ListAnswersByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	records := make([]qnasdk.AnswerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, answerRecord(row))
	}

	if encoded, err := json.Marshal(records); err == nil {
		if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
			slogx.FromContext(ctx).Warn("answer list cache write failed", "question_id", questionID, "error", err)
		}
	}
	return records, nil
}

// Create publishes an answer and notifies the asker.
func (s *AnswerService) Create(ctx context.Context, actor domain.User, req qnasdk.CreateAnswerRequest) (qnasdk.AnswerRecord, error) {
	if req.QuestionID == "" || req.Content == "" {
		return qnasdk.AnswerRecord{}, ErrAnswerInputRequired
	}

	q, err := s.store.Questions().GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return qnasdk.AnswerRecord{}, ErrQuestionNotFound
		}
		return qnasdk.AnswerRecord{}, err
	}

	now := s.now().UTC()
	a := domain.Answer{
		ID:         idx.New().String(),
		QuestionID: q.ID,
		Content:    req.Content,
		AnswererID: actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m := domain.Message{
		ID:         idx.New().String(),
		ReceiverID: q.AskerID,
		Content:    fmt.Sprintf("%s回答了你的问题：%s", actor.Username, q.Title),
		CreatedAt:  now,
	}

	err = s.store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Answers().CreateAnswer(ctx, a); err != nil {
			return err
		}
		return tx.Messages().CreateMessage(ctx, m)
	})
	if err != nil {
		return qnasdk.AnswerRecord{}, err
	}

	s.invalidate(ctx, cache.AnswerListKey(q.ID))

	return answerRecord(domain.AnswerWithAnswerer{
		Answer:           a,
		AnswererUsername: actor.Username,
	}), nil
}

// Update changes the content of the actor's own answer. A nil content keeps
// the current value.
func (s *AnswerService) Update(ctx context.Context, actor domain.User, req qnasdk.UpdateAnswerRequest) (qnasdk.AnswerRecord, error) {
	if req.AnswerID == "" {
		return qnasdk.AnswerRecord{}, ErrAnswerIDRequired
	}

	a, err := s.store.Answers().GetAnswerByID(ctx, req.AnswerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return qnasdk.AnswerRecord{}, ErrAnswerNotFound
		}
		return qnasdk.AnswerRecord{}, err
	}
	if !s.policy.CanModify(actor, a.AnswererID) {
		return qnasdk.AnswerRecord{}, ErrAnswerModifyDenied
	}

	content := a.Content
	if req.Content != nil {
		content = *req.Content
	}

	now := s.now().UTC()
	if err := s.store.Answers().UpdateAnswerContent(ctx, a.ID, content, now); err != nil {
		// The row can vanish between the ownership read and this write.
		if errors.Is(err, store.ErrNotFound) {
			return qnasdk.AnswerRecord{}, ErrAnswerNotFound
		}
		return qnasdk.AnswerRecord{}, err
	}

	s.invalidate(ctx, cache.AnswerListKey(a.QuestionID))

	a.Content, a.UpdatedAt = content, now
	return answerRecord(domain.AnswerWithAnswerer{
		Answer:           a,
		AnswererUsername: actor.Username,
	}), nil
}

// Delete removes an answer (owner or admin).
func (s *AnswerService) Delete(ctx context.Context, actor domain.User, answerID string) error {
	if answerID == "" {
		return ErrAnswerIDRequired
	}

	a, err := s.store.Answers().GetAnswerByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAnswerNotFound
		}
		return err
	}
	if !s.policy.CanDelete(actor, a.AnswererID) {
		return ErrAnswerDeleteDenied
	}

	if err := s.store.Answers().DeleteAnswer(ctx, a.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAnswerNotFound
		}
		return err
	}

	s.invalidate(ctx, cache.AnswerListKey(a.QuestionID))
	return nil
}

func (s *AnswerService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		slogx.FromContext(ctx).Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}

func answerRecord(row domain.AnswerWithAnswerer) qnasdk.AnswerRecord {
	return qnasdk.AnswerRecord{
		AnswerID:         row.ID,
		Content:          row.Content,
		AnswererID:       row.AnswererID,
		AnswererUsername: row.AnswererUsername,
		CreatedAt:        row.CreatedAt.Format(qnasdk.TimeLayout),
		UpdatedAt:        row.UpdatedAt.Format(qnasdk.TimeLayout),
	}
}
