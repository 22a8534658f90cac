package service

import (
	"context"
	"testing"
	"time"

	"github.com/scholarhub/backend/internal/qna/cache"
	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/scholarhub/backend/internal/qna/store"
	"github.com/scholarhub/backend/pkg/qnasdk"
	"github.com/stretchr/testify/require"
)

func TestAnswerCreate(t *testing.T) {
	t.Parallel()

	st, mem := newTestDeps(t)
	svc := NewAnswerService(st, mem, time.Minute)
	alice := seedUser(t, st, "alice", false)
	bob := seedUser(t, st, "bob", false)
	ctx := context.Background()

	q := seedQuestion(t, st, alice, "如何部署向量数据库", "body")

	t.Run("rejects missing question id or content", func(t *testing.T) {
		_, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: "", Content: "x"})
		require.ErrorIs(t, err, ErrAnswerInputRequired)

		_, err = svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: ""})
		require.ErrorIs(t, err, ErrAnswerInputRequired)
		require.EqualError(t, err, "问题id和回答内容不能为空")
	})

	t.Run("unknown question is not found and writes nothing", func(t *testing.T) {
		_, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: "missing", Content: "x"})
		require.ErrorIs(t, err, ErrQuestionNotFound)

		for _, u := range []string{alice.ID, bob.ID} {
			msgs, err := st.Messages().ListMessagesByReceiver(ctx, u)
			require.NoError(t, err)
			require.Empty(t, msgs)
		}
	})

	t.Run("persists the answer and notifies the asker", func(t *testing.T) {
		rec, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "用 docker compose"})
		require.NoError(t, err)
		require.Equal(t, bob.ID, rec.AnswererID)
		require.Equal(t, "bob", rec.AnswererUsername)

		msgs, err := st.Messages().ListMessagesByReceiver(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.Equal(t, "bob回答了你的问题：如何部署向量数据库", msgs[0].Content)
		require.False(t, msgs[0].Read)

		// The answerer gets nothing.
		msgs, err = st.Messages().ListMessagesByReceiver(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, msgs)
	})

	t.Run("answering your own question still notifies", func(t *testing.T) {
		own := seedQuestion(t, st, bob, "自问", "body")
		_, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: own.ID, Content: "自答"})
		require.NoError(t, err)

		msgs, err := st.Messages().ListMessagesByReceiver(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.Equal(t, "bob回答了你的问题：自问", msgs[0].Content)
	})

	t.Run("invalidates the question's answer list", func(t *testing.T) {
		_, err := svc.List(ctx, q.ID)
		require.NoError(t, err)
		_, hit, err := mem.Get(ctx, cache.AnswerListKey(q.ID))
		require.NoError(t, err)
		require.True(t, hit)

		_, err = svc.Create(ctx, alice, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "another take"})
		require.NoError(t, err)

		_, hit, err = mem.Get(ctx, cache.AnswerListKey(q.ID))
		require.NoError(t, err)
		require.False(t, hit)
	})
}

func TestAnswerList(t *testing.T) {
	t.Parallel()

	st, mem := newTestDeps(t)
	svc := NewAnswerService(st, mem, time.Minute)
	alice := seedUser(t, st, "alice", false)
	bob := seedUser(t, st, "bob", false)
	ctx := context.Background()

	t.Run("requires a question id", func(t *testing.T) {
		_, err := svc.List(ctx, "")
		require.ErrorIs(t, err, ErrQuestionIDRequired)
	})

	t.Run("unknown question is not found", func(t *testing.T) {
		_, err := svc.List(ctx, "missing")
		require.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("returns answers in insertion order with usernames", func(t *testing.T) {
		q := seedQuestion(t, st, alice, "ordered", "body")
		_, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "first"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, alice, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "second"})
		require.NoError(t, err)

		list, err := svc.List(ctx, q.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "first", list[0].Content)
		require.Equal(t, "bob", list[0].AnswererUsername)
		require.Equal(t, "second", list[1].Content)
		require.Equal(t, "alice", list[1].AnswererUsername)
	})

	t.Run("lists are cached per question", func(t *testing.T) {
		q1 := seedQuestion(t, st, alice, "one", "body")
		q2 := seedQuestion(t, st, alice, "two", "body")
		_, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q1.ID, Content: "for one"})
		require.NoError(t, err)

		_, err = svc.List(ctx, q1.ID)
		require.NoError(t, err)
		_, err = svc.List(ctx, q2.ID)
		require.NoError(t, err)

		// Writing to q2 leaves q1's cached list in place.
		_, err = svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q2.ID, Content: "for two"})
		require.NoError(t, err)

		_, hit, err := mem.Get(ctx, cache.AnswerListKey(q1.ID))
		require.NoError(t, err)
		require.True(t, hit)
		_, hit, err = mem.Get(ctx, cache.AnswerListKey(q2.ID))
		require.NoError(t, err)
		require.False(t, hit)
	})
}

func TestAnswerUpdate(t *testing.T) {
	t.Parallel()

	st, mem := newTestDeps(t)
	svc := NewAnswerService(st, mem, time.Minute)
	alice := seedUser(t, st, "alice", false)
	bob := seedUser(t, st, "bob", false)
	admin := seedUser(t, st, "admin", true)
	ctx := context.Background()

	q := seedQuestion(t, st, alice, "q", "body")
	rec, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "original"})
	require.NoError(t, err)

	t.Run("requires an id", func(t *testing.T) {
		_, err := svc.Update(ctx, bob, qnasdk.UpdateAnswerRequest{})
		require.ErrorIs(t, err, ErrAnswerIDRequired)
		require.EqualError(t, err, "回答id不能为空")
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.Update(ctx, bob, qnasdk.UpdateAnswerRequest{AnswerID: "missing"})
		require.ErrorIs(t, err, ErrAnswerNotFound)
		require.EqualError(t, err, "回答不存在")
	})

	t.Run("only the owner may modify", func(t *testing.T) {
		content := "hijacked"
		_, err := svc.Update(ctx, alice, qnasdk.UpdateAnswerRequest{AnswerID: rec.AnswerID, Content: &content})
		require.ErrorIs(t, err, ErrAnswerModifyDenied)
		require.EqualError(t, err, "只能修改自己的回答")

		_, err = svc.Update(ctx, admin, qnasdk.UpdateAnswerRequest{AnswerID: rec.AnswerID, Content: &content})
		require.ErrorIs(t, err, ErrAnswerModifyDenied)
	})

	t.Run("owner updates content and the cache drops", func(t *testing.T) {
		_, err := svc.List(ctx, q.ID)
		require.NoError(t, err)

		content := "revised"
		got, err := svc.Update(ctx, bob, qnasdk.UpdateAnswerRequest{AnswerID: rec.AnswerID, Content: &content})
		require.NoError(t, err)
		require.Equal(t, "revised", got.Content)

		_, hit, err := mem.Get(ctx, cache.AnswerListKey(q.ID))
		require.NoError(t, err)
		require.False(t, hit)
	})
}

func TestAnswerDelete(t *testing.T) {
	t.Parallel()

	st, mem := newTestDeps(t)
	svc := NewAnswerService(st, mem, time.Minute)
	alice := seedUser(t, st, "alice", false)
	bob := seedUser(t, st, "bob", false)
	admin := seedUser(t, st, "admin", true)
	ctx := context.Background()

	q := seedQuestion(t, st, alice, "q", "body")

	t.Run("requires an id", func(t *testing.T) {
		err := svc.Delete(ctx, bob, "")
		require.ErrorIs(t, err, ErrAnswerIDRequired)
	})

	t.Run("stranger cannot, owner and admin can", func(t *testing.T) {
		first, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "one"})
		require.NoError(t, err)
		second, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "two"})
		require.NoError(t, err)

		err = svc.Delete(ctx, alice, first.AnswerID)
		require.ErrorIs(t, err, ErrAnswerDeleteDenied)
		require.ErrorIs(t, err, domain.ErrForbidden)
		require.EqualError(t, err, "只能删除自己的回答")

		require.NoError(t, svc.Delete(ctx, bob, first.AnswerID))
		require.NoError(t, svc.Delete(ctx, admin, second.AnswerID))

		err = svc.Delete(ctx, bob, first.AnswerID)
		require.ErrorIs(t, err, ErrAnswerNotFound)
	})
}

// vanishingAnswersStore mirrors vanishingQuestionsStore for the answer
// write paths.
type vanishingAnswersStore struct {
	store.Store
}

func (s vanishingAnswersStore) Answers() store.Answers {
	return vanishingAnswers{s.Store.Answers()}
}

type vanishingAnswers struct {
	store.Answers
}

func (r vanishingAnswers) UpdateAnswerContent(ctx context.Context, id, content string, updatedAt time.Time) error {
	if err := r.Answers.DeleteAnswer(ctx, id); err != nil {
		return err
	}
	return r.Answers.UpdateAnswerContent(ctx, id, content, updatedAt)
}

func (r vanishingAnswers) DeleteAnswer(ctx context.Context, id string) error {
	if err := r.Answers.DeleteAnswer(ctx, id); err != nil {
		return err
	}
	return r.Answers.DeleteAnswer(ctx, id)
}

func TestAnswerWriteRacesDelete(t *testing.T) {
	t.Parallel()

	st, mem := newTestDeps(t)
	svc := NewAnswerService(vanishingAnswersStore{st}, mem, time.Minute)
	alice := seedUser(t, st, "alice", false)
	bob := seedUser(t, st, "bob", false)
	ctx := context.Background()

	q := seedQuestion(t, st, alice, "并发下的问题", "body")

	t.Run("update reports not found", func(t *testing.T) {
		a, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "回答"})
		require.NoError(t, err)
		content := "改过的回答"

		_, err = svc.Update(ctx, bob, qnasdk.UpdateAnswerRequest{AnswerID: a.AnswerID, Content: &content})
		require.ErrorIs(t, err, ErrAnswerNotFound)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.EqualError(t, err, "回答不存在")
	})

	t.Run("delete reports not found", func(t *testing.T) {
		a, err := svc.Create(ctx, bob, qnasdk.CreateAnswerRequest{QuestionID: q.ID, Content: "又一个回答"})
		require.NoError(t, err)

		err = svc.Delete(ctx, bob, a.AnswerID)
		require.ErrorIs(t, err, ErrAnswerNotFound)
	})
}
