package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/scholarhub/backend/internal/qna/openalex"
	"github.com/scholarhub/backend/pkg/qnasdk"
	"github.com/stretchr/testify/require"
)

func TestEntityValidationHappensBeforeTheNetwork(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"S1"}`))
	}))
	defer srv.Close()

	svc := NewEntityService(openalex.NewClient(srv.URL, ""))
	ctx := context.Background()

	_, err := svc.Search(ctx, "work", qnasdk.EntitySearchRequest{Search: "x"})
	require.ErrorIs(t, err, ErrUnknownEntityType)
	require.EqualError(t, err, "未知的实体类型")

	_, err = svc.Detail(ctx, "journal", "S1")
	require.ErrorIs(t, err, ErrUnknownEntityType)

	_, err = svc.Detail(ctx, "source", "")
	require.ErrorIs(t, err, ErrEntityIDRequired)
	require.EqualError(t, err, "请给出id")

	require.Zero(t, calls.Load())
}

func TestEntityProxyPassesBodiesThrough(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/funders":
			_, _ = w.Write([]byte(`{"meta":{"count":1},"results":[{"id":"F1","display_name":"NSF"}]}`))
		case "/funders/F1":
			_, _ = w.Write([]byte(`{"id":"F1","display_name":"NSF"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	svc := NewEntityService(openalex.NewClient(srv.URL, ""))
	ctx := context.Background()

	result, err := svc.Search(ctx, "funder", qnasdk.EntitySearchRequest{Search: "nsf"})
	require.NoError(t, err)
	payload, ok := result.(map[string]any)
	require.True(t, ok)
	require.Contains(t, payload, "results")

	result, err = svc.Detail(ctx, "funder", "F1")
	require.NoError(t, err)
	payload, ok = result.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "NSF", payload["display_name"])
}
