package rest

import (
	"net/http"

	"beanstalk/core"
	"beanstalk/handler/param"
	"beanstalk/handler/render"
	"beanstalk/handler/views"
	"beanstalk/service/proposal"

	"github.com/asaskevich/govalidator"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

func handleProposals(cfg *core.Config, proposals core.ProposalStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Space  string `json:"space"`
			Offset int    `json:"offset"`
			Limit  int    `json:"limit"`
		}
		if e := param.Binding(r, &params); e != nil {
			render.Err(w, e)
			return
		}

		if params.Space != "" && !govalidator.IsIn(params.Space, cfg.SpaceIDs()...) {
			render.Err(w, core.ErrSpaceNotAllowed)
			return
		}

		if params.Offset < 0 {
			params.Offset = 0
		}

		if params.Limit <= 0 || params.Limit > maxLimit {
			params.Limit = defaultLimit
		}

		list, err := proposals.List(ctx, params.Space, params.Offset, params.Limit)
		if err != nil {
			render.Err(w, err)
			return
		}

		nextOffset := 0
		if len(list) == params.Limit {
			nextOffset = params.Offset + params.Limit
		}

		render.JSON(w, render.H{
			"data": render.H{
				"proposals": views.ProposalViews(list),
				"pagination": render.H{
					"next_offset": nextOffset,
					"has_next":    nextOffset > 0,
				},
			},
		})
	}
}

func handleProposal(proposalz *proposal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := param.ProposalID(r)
		if err != nil {
			render.Err(w, err)
			return
		}

		p, err := proposalz.Find(ctx, id)
		if err != nil {
			render.Err(w, err)
			return
		}

		quorum := proposalz.Quorum(ctx, p)
		content, err := proposalz.Content(ctx, p, quorum)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{
			"data": render.H{
				"proposal": views.ProposalView(*p),
				"quorum":   quorum,
				"content":  views.ContentView(content),
			},
		})
	}
}
