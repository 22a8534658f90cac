package sqlite

import (
	"context"

	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/scholarhub/backend/internal/qna/store"
)

type usersRepo struct {
	q dbtx
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	const query = `
	SELECT id, username, is_admin, created_at, updated_at
	FROM users WHERE id = ?;`

	var u domain.User
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.Admin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	const query = `
	INSERT INTO users (id, username, is_admin, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?);`

	_, err := r.q.ExecContext(ctx, query,
		u.ID, u.Username, u.Admin, u.CreatedAt, u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
