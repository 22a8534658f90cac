package sqlite

import (
	"context"
	"time"

	"github.com/scholarhub/backend/internal/qna/domain"
)

type messagesRepo struct {
	q dbtx
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) error {
	const query = `
	INSERT INTO messages (id, receiver_id, content, read, created_at)
	VALUES (?, ?, ?, ?, ?);`

	_, err := r.q.ExecContext(ctx, query,
		m.ID, m.ReceiverID, m.Content, m.Read, m.CreatedAt,
	)
	return err
}

func (r *messagesRepo) ListMessagesByReceiver(
	ctx context.Context,
	receiverID string,
) ([]domain.Message, error) {
	const query = `
	SELECT id, receiver_id, content, read, created_at
	FROM messages
	WHERE receiver_id = ?
	ORDER BY id DESC;`

	rows, err := r.q.QueryContext(ctx, query, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ReceiverID, &m.Content, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *messagesRepo) MarkMessageRead(ctx context.Context, id, receiverID string) error {
	const query = `
	UPDATE messages SET read = 1
	WHERE id = ? AND receiver_id = ?;`

	res, err := r.q.ExecContext(ctx, query, id, receiverID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *messagesRepo) DeleteReadMessagesBefore(ctx context.Context, cutoff time.Time) error {
	const query = `
	DELETE FROM messages WHERE read = 1 AND created_at < ?;`

	_, err := r.q.ExecContext(ctx, query, cutoff)
	return err
}
