package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vncsmyrnk/nominate/docs"
)

func NewHandler(pollHandler *PollHandler, voteHandler *VoteHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", VoterIDHeader},
		ExposedHeaders: []string{VoterIDHeader, "Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/polls", func(r chi.Router) {
			r.Post("/", pollHandler.CreatePoll)
			r.Get("/", pollHandler.ListPolls)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", pollHandler.GetPoll)
				r.Delete("/", pollHandler.DeletePoll)
				r.Post("/close", pollHandler.ClosePoll)
				r.Get("/results", pollHandler.GetResults)
				r.Get("/results/export", pollHandler.ExportResults)
				r.Post("/votes", voteHandler.VoteOnPoll)
				r.Delete("/votes/{nominationID}", voteHandler.Unvote)
			})
		})

		r.Get("/nominations/{id}", pollHandler.GetNomination)
	})

	return r
}
