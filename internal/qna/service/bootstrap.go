package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/scholarhub/backend/internal/qna/domain"
	"github.com/scholarhub/backend/internal/qna/store"
	"github.com/scholarhub/backend/pkg/idx"
	"github.com/scholarhub/backend/pkg/jwtx"
	"github.com/scholarhub/backend/pkg/qnasdk"
	"github.com/scholarhub/backend/pkg/slogx"
)

// BootstrapService creates the very first admin account on an empty
// database and mints its access token. It refuses to run once any user
// exists; further accounts come from the identity provider, not from here.
type BootstrapService struct {
	store  store.Store
	signer *jwtx.HS256
	token  string
	ttl    time.Duration
	now    func() time.Time
}

func NewBootstrapService(st store.Store, signer *jwtx.HS256, token string, ttl time.Duration) *BootstrapService {
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	return &BootstrapService{
		store:  st,
		signer: signer,
		token:  token,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Bootstrap creates the initial admin. The shared token is checked in
// constant time when one is configured.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, req qnasdk.BootstrapRequest) (qnasdk.BootstrapResponse, error) {
	if s.token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		return qnasdk.BootstrapResponse{}, ErrBadBootstrapToken
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return qnasdk.BootstrapResponse{}, ErrUsernameRequired
	}

	empty, err := s.store.Users().IsEmpty(ctx)
	if err != nil {
		return qnasdk.BootstrapResponse{}, err
	}
	if !empty {
		return qnasdk.BootstrapResponse{}, ErrAlreadyBootstrapped
	}

	now := s.now().UTC()
	admin := domain.User{
		ID:        idx.New().String(),
		Username:  username,
		Admin:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Users().CreateUser(ctx, admin); err != nil {
		// A racing bootstrap that lost the unique-username insert reads
		// as already initialized.
		if errors.Is(err, store.ErrAlreadyExists) {
			return qnasdk.BootstrapResponse{}, ErrAlreadyBootstrapped
		}
		return qnasdk.BootstrapResponse{}, err
	}

	access, err := s.signer.Mint(admin.ID, admin.Username, true, s.ttl)
	if err != nil {
		return qnasdk.BootstrapResponse{}, err
	}

	slogx.FromContext(ctx).Info("bootstrap admin created", "user_id", admin.ID, "username", admin.Username)

	return qnasdk.BootstrapResponse{
		UserID:      admin.ID,
		Username:    admin.Username,
		AccessToken: access,
	}, nil
}
