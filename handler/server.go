package handler

import (
	"net/http"

	"beanstalk/core"
	"beanstalk/handler/hc"
	"beanstalk/handler/page"
	"beanstalk/handler/render"
	"beanstalk/handler/rest"
	"beanstalk/service/proposal"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	cfg       *core.Config
	proposals core.ProposalStore
	proposalz *proposal.Service
}

// New new server function
func New(
	cfg *core.Config,
	proposals core.ProposalStore,
	proposalz *proposal.Service,
) Server {
	return Server{
		cfg:       cfg,
		proposals: proposals,
		proposalz: proposalz,
	}
}

// Handler mux with every route mounted
func (s Server) Handler(version string) http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(cors.AllowAll().Handler)
	mux.Use(logger.WithRequestID)
	mux.Use(middleware.Logger)
	mux.Use(middleware.NewCompressor(5).Handler)

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Err(w, twirp.NotFoundError("not found"))
	})

	{
		//hc
		mux.Mount("/hc", hc.Handle(version))
	}

	{
		//restful api
		mux.Mount("/api", s.HandleRestAPI())
	}

	{
		//html pages
		mux.Mount("/", page.Handle(s.proposalz))
	}

	return mux
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	return rest.Handle(s.cfg, s.proposals, s.proposalz)
}
