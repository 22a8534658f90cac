package service

import (
	"context"
	"testing"
	"time"

	"github.com/scholarhub/backend/pkg/qnasdk"
	"github.com/stretchr/testify/require"
)

func TestMessageListAndMarkRead(t *testing.T) {
	t.Parallel()

	st, mem := newTestDeps(t)
	answers := NewAnswerService(st, mem, time.Minute)
	svc := NewMessageService(st)
	alice := seedUser(t, st, "alice", false)
	bob := seedUser(t, st, "bob", false)
	ctx := context.Background()

	q := seedQuestion(t, st, alice, "通知测试", "body")
	_, err := answers.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "first"})
	require.NoError(t, err)
	_, err = answers.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "second"})
	require.NoError(t, err)

	t.Run("newest first, receiver scoped", func(t *testing.T) {
		msgs, err := svc.List(ctx, alice)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		require.GreaterOrEqual(t, msgs[0].MessageID, msgs[1].MessageID)

		msgs, err = svc.List(ctx, bob)
		require.NoError(t, err)
		require.Empty(t, msgs)
	})

	t.Run("requires an id", func(t *testing.T) {
		err := svc.MarkRead(ctx, alice, "")
		require.ErrorIs(t, err, ErrMessageIDRequired)
		require.EqualError(t, err, "消息id不能为空")
	})

	t.Run("mark read flips the flag", func(t *testing.T) {
		msgs, err := svc.List(ctx, alice)
		require.NoError(t, err)
		require.False(t, msgs[0].Read)

		require.NoError(t, svc.MarkRead(ctx, alice, msgs[0].MessageID))

		msgs, err = svc.List(ctx, alice)
		require.NoError(t, err)
		require.True(t, msgs[0].Read)
	})

	t.Run("cannot ack someone else's message", func(t *testing.T) {
		msgs, err := svc.List(ctx, alice)
		require.NoError(t, err)

		err = svc.MarkRead(ctx, bob, msgs[1].MessageID)
		require.ErrorIs(t, err, ErrMessageNotFound)
		require.EqualError(t, err, "消息不存在")
	})
}

func TestHousekeepingPurgesOldReadMessages(t *testing.T) {
	t.Parallel()

	st, mem := newTestDeps(t)
	answers := NewAnswerService(st, mem, time.Minute)
	msgs := NewMessageService(st)
	alice := seedUser(t, st, "alice", false)
	bob := seedUser(t, st, "bob", false)
	ctx := context.Background()

	q := seedQuestion(t, st, alice, "归档", "body")
	_, err := answers.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "old news"})
	require.NoError(t, err)

	list, err := msgs.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, msgs.MarkRead(ctx, alice, list[0].MessageID))

	hk := NewHousekeepingService(st, testLogger(), time.Hour, time.Hour)

	// Inside the retention window nothing is touched.
	hk.cleanup()
	list, err = msgs.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// Zero retention normalizes to the default in the constructor, so force
	// an expired window directly for the purge check.
	hk.Retention = -time.Minute
	hk.cleanup()
	list, err = msgs.List(ctx, alice)
	require.NoError(t, err)
	require.Empty(t, list)
}
