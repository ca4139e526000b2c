package rest

import (
	"net/http"

	"beanstalk/core"
	"beanstalk/handler/render"
	"beanstalk/service/proposal"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Handle handle rest api request
func Handle(cfg *core.Config, proposals core.ProposalStore, proposalz *proposal.Service) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Err(w, twirp.NotFoundError("not found"))
	})

	router.Get("/proposals", handleProposals(cfg, proposals))
	router.Get("/proposals/{id}", handleProposal(proposalz))

	return router
}
