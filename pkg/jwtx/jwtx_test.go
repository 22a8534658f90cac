package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMintVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("test-secret"), "scholarhub-qna")

	raw, err := h.Mint("01USER", "alice", true, time.Hour)
	require.NoError(t, err)

	claims, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "01USER", claims.Subject)
	require.Equal(t, "alice", claims.Username)
	require.True(t, claims.Admin)
	require.Equal(t, "scholarhub-qna", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	minter := NewHS256([]byte("secret-a"), "scholarhub-qna")
	verifier := NewHS256([]byte("secret-b"), "scholarhub-qna")

	raw, err := minter.Mint("01USER", "alice", false, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	minter := NewHS256([]byte("secret"), "someone-else")
	verifier := NewHS256([]byte("secret"), "scholarhub-qna")

	raw, err := minter.Mint("01USER", "alice", false, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("secret"), "scholarhub-qna")

	raw, err := h.Mint("01USER", "alice", false, -time.Minute)
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	h := NewHS256([]byte("secret"), "scholarhub-qna")
	_, err := h.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
