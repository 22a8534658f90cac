package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/scholarhub/backend/internal/qna/cache"
	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/scholarhub/backend/internal/qna/store"
	"github.com/scholarhub/backend/pkg/idx"
	"github.com/scholarhub/backend/pkg/qnasdk"
	"github.com/scholarhub/backend/pkg/slogx"
)

// QuestionService owns the question lifecycle: listing through the cache,
// and create/update/delete with owner-or-admin authorization plus cache
// invalidation on every write.
type QuestionService struct {
	store  store.Store
	cache  cache.Cache
	ttl    time.Duration
	policy Policy
	now    func() time.Time
}

func NewQuestionService(st store.Store, c cache.Cache, ttl time.Duration) *QuestionService {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &QuestionService{
		store: st,
		cache: c,
		ttl:   ttl,
		now:   time.Now,
	}
}

// List returns all questions, newest last. Reads go through the cache:
// a hit is served as-is, a miss recomputes from the store and repopulates.
// Cache failures degrade to store reads, never to request failures.
func (s *QuestionService) List(ctx context.Context) ([]qnasdk.QuestionRecord, error) {
	key := cache.QuestionListKey()

	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		slogx.FromContext(ctx).Warn("question list cache read failed", "error", err)
	} else if hit {
		var records []qnasdk.QuestionRecord
		if err := json.Unmarshal(raw, &records); err == nil {
			return records, nil
		}
		slogx.FromContext(ctx).Warn("question list cache entry unreadable, recomputing", "error", err)
	}

	rows, err := s.store.Questions().ListQuestions(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]qnasdk.QuestionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, questionRecord(row))
	}

	if encoded, err := json.Marshal(records); err == nil {
		if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
			slogx.FromContext(ctx).Warn("question list cache write failed", "error", err)
		}
	}
	return records, nil
}

// Create publishes a new question by the acting user.
func (s *QuestionService) Create(ctx context.Context, actor domain.User, req qnasdk.CreateQuestionRequest) (qnasdk.QuestionRecord, error) {
	if req.Title == "" || req.Content == "" {
		return qnasdk.QuestionRecord{}, ErrTitleContentRequired
	}

	now := s.now().UTC()
	q := domain.Question{
		ID:        idx.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		AskerID:   actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Questions().CreateQuestion(ctx, q); err != nil {
		return qnasdk.QuestionRecord{}, err
	}

	s.invalidate(ctx, cache.QuestionListKey())

	return questionRecord(domain.QuestionWithAsker{
		Question:      q,
		AskerUsername: actor.Username,
	}), nil
}

// Update changes title and/or content of the actor's own question. Nil
// request fields keep their current value.
func (s *QuestionService) Update(ctx context.Context, actor domain.User, req qnasdk.UpdateQuestionRequest) (qnasdk.QuestionRecord, error) {
	if req.QuestionID == "" {
		return qnasdk.QuestionRecord{}, ErrQuestionIDRequired
	}

	q, err := s.store.Questions().GetQuestionByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return qnasdk.QuestionRecord{}, ErrQuestionNotFound
		}
		return qnasdk.QuestionRecord{}, err
	}
	if !s.policy.CanModify(actor, q.AskerID) {
		return qnasdk.QuestionRecord{}, ErrQuestionModifyDenied
	}

	title, content := q.Title, q.Content
	if req.Title != nil {
		title = *req.Title
	}
	if req.Content != nil {
		content = *req.Content
	}

	now := s.now().UTC()
	if err := s.store.Questions().UpdateQuestion(ctx, q.ID, title, content, now); err != nil {
		// The row can vanish between the ownership read and this write.
		if errors.Is(err, store.ErrNotFound) {
			return qnasdk.QuestionRecord{}, ErrQuestionNotFound
		}
		return qnasdk.QuestionRecord{}, err
	}

	s.invalidate(ctx, cache.QuestionListKey())

	q.Title, q.Content, q.UpdatedAt = title, content, now
	return questionRecord(domain.QuestionWithAsker{
		Question:      q,
		AskerUsername: actor.Username,
	}), nil
}

// Delete removes a question (owner or admin). The question's answers go
// with it, so both list projections are invalidated.
func (s *QuestionService) Delete(ctx context.Context, actor domain.User, questionID string) error {
	if questionID == "" {
		return ErrQuestionIDRequired
	}

	q, err := s.store.Questions().GetQuestionByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	if !s.policy.CanDelete(actor, q.AskerID) {
		return ErrQuestionDeleteDenied
	}

	if err := s.store.Questions().DeleteQuestion(ctx, q.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	s.invalidate(ctx, cache.QuestionListKey(), cache.AnswerListKey(q.ID))
	return nil
}

// invalidate drops cache keys after a successful write. A failed drop is
// logged, not surfaced: the next read either misses (backend back up) or
// falls through to the store (backend still down).
func (s *QuestionService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		slogx.FromContext(ctx).Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}

func questionRecord(row domain.QuestionWithAsker) qnasdk.QuestionRecord {
	return qnasdk.QuestionRecord{
		QuestionID:    row.ID,
		Title:         row.Title,
		AskerID:       row.AskerID,
		AskerUsername: row.AskerUsername,
		Content:       row.Content,
		CreatedAt:     row.CreatedAt.Format(qnasdk.TimeLayout),
		UpdatedAt:     row.UpdatedAt.Format(qnasdk.TimeLayout),
	}
}
