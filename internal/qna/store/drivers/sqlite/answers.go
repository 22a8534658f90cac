package sqlite

import (
	"context"
	"time"

	"github.com/scholarhub/backend/internal/qna/domain"
)

type answersRepo struct {
	q dbtx
}

func (r *answersRepo) GetAnswerByID(ctx context.Context, id string) (domain.Answer, error) {
	const query = `
	SELECT id, question_id, content, answerer_id, created_at, updated_at
	FROM answers WHERE id = ?;`

	var a domain.Answer
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.QuestionID, &a.Content, &a.AnswererID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Answer{}, mapNotFound(err)
	}
	return a, nil
}

func (r *answersRepo) ListAnswersByQuestion(
	ctx context.Context,
	questionID string,
) ([]domain.AnswerWithAnswerer, error) {
	const query = `
	SELECT a.id, a.question_id, a.content, a.answerer_id, u.username, a.created_at, a.updated_at
	FROM answers a
	JOIN users u ON u.id = a.answerer_id
	WHERE a.question_id = ?
	ORDER BY a.id;`

	rows, err := r.q.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AnswerWithAnswerer
	for rows.Next() {
		var a domain.AnswerWithAnswerer
		if err := rows.Scan(
			&a.ID, &a.QuestionID, &a.Content, &a.AnswererID, &a.AnswererUsername, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *answersRepo) CreateAnswer(ctx context.Context, a domain.Answer) error {
	const query = `
	INSERT INTO answers (id, question_id, content, answerer_id, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?);`

	_, err := r.q.ExecContext(ctx, query,
		a.ID, a.QuestionID, a.Content, a.AnswererID, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *answersRepo) UpdateAnswerContent(
	ctx context.Context,
	id, content string,
	updatedAt time.Time,
) error {
	const query = `
	UPDATE answers SET content = ?, updated_at = ?
	WHERE id = ?;`

	res, err := r.q.ExecContext(ctx, query, content, updatedAt, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *answersRepo) DeleteAnswer(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM answers WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
