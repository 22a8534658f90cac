package service

import (
	"testing"

	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/stretchr/testify/require"
)

func TestPolicy(t *testing.T) {
	t.Parallel()

	owner := domain.User{ID: "u1", Username: "alice"}
	other := domain.User{ID: "u2", Username: "bob"}
	admin := domain.User{ID: "u3", Username: "root", Admin: true}

	var p Policy

	t.Run("modify is owner only", func(t *testing.T) {
		require.True(t, p.CanModify(owner, owner.ID))
		require.False(t, p.CanModify(other, owner.ID))
		// Admin privilege does not extend to editing others' content.
		require.False(t, p.CanModify(admin, owner.ID))
	})

	t.Run("delete is owner or admin", func(t *testing.T) {
		require.True(t, p.CanDelete(owner, owner.ID))
		require.False(t, p.CanDelete(other, owner.ID))
		require.True(t, p.CanDelete(admin, owner.ID))
	})
}
