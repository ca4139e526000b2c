package resthttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fox-one/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "POST", r.Method)

		switch req.Variables["id"] {
		case "ok":
			_, _ = w.Write([]byte(`{"data":{"proposal":{"id":"ok"}}}`))
		case "bad":
			_, _ = w.Write([]byte(`{"errors":[{"message":"invalid id"},{"message":"again"}]}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	var resp struct {
		Proposal struct {
			ID string `json:"id"`
		} `json:"proposal"`
	}
	require.NoError(t, Query(ctx, srv.URL, "query", map[string]interface{}{"id": "ok"}, &resp))
	assert.Equal(t, "ok", resp.Proposal.ID)

	err := Query(ctx, srv.URL, "query", map[string]interface{}{"id": "bad"}, &resp)
	assert.True(t, errors.Is(err, ErrGraphQL))
	assert.Contains(t, err.Error(), "invalid id; again")

	err = Query(ctx, srv.URL, "query", map[string]interface{}{"id": "down"}, &resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestQueryForwardsRequestID(t *testing.T) {
	ids := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids <- r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	ctx := logger.WithContext(context.Background(), logger.FromContext(context.Background()).WithField("request-id", "req-1"))
	require.NoError(t, Query(ctx, srv.URL, "query", nil, nil))
	assert.Equal(t, "req-1", <-ids)

	require.NoError(t, Query(context.Background(), srv.URL, "query", nil, nil))
	assert.Empty(t, <-ids)
}
