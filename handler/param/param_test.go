package param

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twitchtv/twirp"
)

func TestBinding(t *testing.T) {
	var params struct {
		Space  string `json:"space"`
		Offset int    `json:"offset"`
		Limit  int    `json:"limit"`
	}

	r := httptest.NewRequest(http.MethodGet, "/proposals?space=beanstalkdao.eth&limit=20&foo=bar", nil)
	require.NoError(t, Binding(r, &params))
	assert.Equal(t, "beanstalkdao.eth", params.Space)
	assert.Equal(t, 20, params.Limit)

	r = httptest.NewRequest(http.MethodGet, "/proposals?limit=many", nil)
	err := Binding(r, &params)
	require.Error(t, err)
	twerr, ok := err.(twirp.Error)
	require.True(t, ok)
	assert.Equal(t, twirp.InvalidArgument, twerr.Code())
}

func TestProposalID(t *testing.T) {
	cases := map[string]bool{
		"0xabc123": true,
		"QmXyZ":    true,
		"0x":       false,
		"a;drop":   false,
	}

	for id, valid := range cases {
		t.Run(id, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", id)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			_, err := ProposalID(r)
			assert.Equal(t, valid, err == nil)
		})
	}
}
