package service

import (
	"context"
	"errors"

	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/scholarhub/backend/internal/qna/store"
)

// UserService resolves verified token subjects into full user rows. The
// auth middleware only proves who the caller claims to be; handlers go
// through here to get the row ownership checks compare against.
type UserService struct {
	store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

// Resolve loads the user behind a token subject. A token whose subject no
// longer exists is rejected, not treated as an anonymous caller.
func (s *UserService) Resolve(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, domain.E(domain.ErrForbidden, "用户不存在")
	}
	return u, err
}
