package page

import (
	"bytes"
	"net/http"

	"beanstalk/handler/param"
	"beanstalk/handler/render"
	"beanstalk/service/proposal"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Handle handle html pages
func Handle(proposalz *proposal.Service) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Err(w, twirp.NotFoundError("not found"))
	})

	router.Get("/proposals/{id}", handleProposal(proposalz))

	return router
}

func handleProposal(proposalz *proposal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := param.ProposalID(r)
		if err != nil {
			render.Err(w, err)
			return
		}

		var b bytes.Buffer
		if err := proposalz.RenderPage(ctx, &b, id); err != nil {
			logger.FromContext(ctx).WithError(err).WithField("proposal", id).Debugln("render page")
			render.Err(w, err)
			return
		}

		render.HTML(w, b.Bytes())
	}
}
