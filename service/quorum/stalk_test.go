package quorum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"beanstalk/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalStalk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "0xbeanstalk", req.Variables["id"])

		if req.Variables["block"] == float64(1) {
			_, _ = w.Write([]byte(`{"data":{"silo":null}}`))
			return
		}

		_, _ = w.Write([]byte(`{"data":{"silo":{"stalk":"123456789000000000"}}}`))
	}))
	defer srv.Close()

	s := NewStalkService(core.Subgraph{Endpoint: srv.URL, Beanstalk: "0xbeanstalk", Decimals: 10})

	stalk, err := s.TotalStalk(context.Background(), 14620000)
	require.NoError(t, err)
	assert.Equal(t, "12345678.9", stalk.String())

	_, err = s.TotalStalk(context.Background(), 1)
	assert.Equal(t, core.ErrQuorumUnavailable, err)
}
