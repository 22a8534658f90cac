package sqlite

import (
	"context"
	"time"

	"github.com/scholarhub/backend/internal/qna/domain"
)

type questionsRepo struct {
	q dbtx
}

func (r *questionsRepo) GetQuestionByID(ctx context.Context, id string) (domain.Question, error) {
	const query = `
	SELECT id, title, content, asker_id, created_at, updated_at
	FROM questions WHERE id = ?;`

	var q domain.Question
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.Title, &q.Content, &q.AskerID, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return domain.Question{}, mapNotFound(err)
	}
	return q, nil
}

func (r *questionsRepo) ListQuestions(ctx context.Context) ([]domain.QuestionWithAsker, error) {
	const query = `
	SELECT q.id, q.title, q.content, q.asker_id, u.username, q.created_at, q.updated_at
	FROM questions q
	JOIN users u ON u.id = q.asker_id
	ORDER BY q.id;`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.QuestionWithAsker
	for rows.Next() {
		var q domain.QuestionWithAsker
		if err := rows.Scan(
			&q.ID, &q.Title, &q.Content, &q.AskerID, &q.AskerUsername, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *questionsRepo) CreateQuestion(ctx context.Context, q domain.Question) error {
	const query = `
	INSERT INTO questions (id, title, content, asker_id, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?);`

	_, err := r.q.ExecContext(ctx, query,
		q.ID, q.Title, q.Content, q.AskerID, q.CreatedAt, q.UpdatedAt,
	)
	return err
}

func (r *questionsRepo) UpdateQuestion(
	ctx context.Context,
	id, title, content string,
	updatedAt time.Time,
) error {
	const query = `
	UPDATE questions SET title = ?, content = ?, updated_at = ?
	WHERE id = ?;`

	res, err := r.q.ExecContext(ctx, query, title, content, updatedAt, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *questionsRepo) DeleteQuestion(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM questions WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
