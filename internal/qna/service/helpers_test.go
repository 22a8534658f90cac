package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/scholarhub/backend/internal/qna/cache"
	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/scholarhub/backend/internal/qna/store"
	"github.com/scholarhub/backend/internal/qna/store/drivers/sqlite"
	"github.com/scholarhub/backend/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestDeps(t *testing.T) (store.Store, *cache.Memory) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return st, cache.NewMemory()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedUser(t *testing.T, st store.Store, username string, admin bool) domain.User {
	t.Helper()

	now := time.Now().UTC()
	u := domain.User{
		ID:        idx.New().String(),
		Username:  username,
		Admin:     admin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func seedQuestion(t *testing.T, st store.Store, asker domain.User, title, content string) domain.Question {
	t.Helper()

	now := time.Now().UTC()
	q := domain.Question{
		ID:        idx.New().String(),
		Title:     title,
		Content:   content,
		AskerID:   asker.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Questions().CreateQuestion(context.Background(), q))
	return q
}
