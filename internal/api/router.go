package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/neonauction/auction-server/internal/api/handlers"
	"github.com/neonauction/auction-server/internal/auction"
	"github.com/neonauction/auction-server/internal/config"
	"github.com/neonauction/auction-server/internal/ws"
)

func NewRouter(store *auction.Store, hub *ws.Hub, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware. StripSlashes keeps the Django-style trailing
	// slashes the client sends working against chi's exact matching.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(hlog.NewHandler(log))
	r.Use(requestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.StripSlashes)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	roomHandler := handlers.NewRoomHandler(store)
	auctionHandler := handlers.NewAuctionHandler(store)
	squadHandler := handlers.NewSquadHandler(store)
	chatHandler := handlers.NewChatHandler(store)
	selectionHandler := handlers.NewSelectionHandler(store)

	r.Route("/api", func(r chi.Router) {
		// Rooms
		r.Post("/create-room", roomHandler.Create)
		r.Post("/join-room", roomHandler.Join)
		r.Get("/rooms", roomHandler.ListPublic)
		r.Get("/room-state/{code}", roomHandler.State)

		// Bidding and host controls
		r.Post("/place-bid", auctionHandler.PlaceBid)
		r.Post("/start-auction", auctionHandler.Start)
		r.Post("/pause-auction", auctionHandler.Pause)
		r.Post("/skip-player", auctionHandler.Skip)
		r.Post("/end-auction", auctionHandler.End)
		r.Post("/update-settings", auctionHandler.UpdateSettings)

		// Squads and pool views
		r.Get("/my-team/{code}/{team}", squadHandler.MyTeam)
		r.Get("/summary/{code}", squadHandler.Summary)
		r.Get("/unsold-players/{code}", squadHandler.UnsoldPlayers)
		r.Get("/upcoming-players/{code}", squadHandler.UpcomingPlayers)

		// Chat and logs
		r.Get("/chat/{code}", chatHandler.History)
		r.Post("/send-message", chatHandler.Send)
		r.Get("/logs/{code}", chatHandler.Logs)

		// Post-auction selection
		r.Get("/check-qualification/{code}", selectionHandler.CheckQualification)
		r.Post("/submit-xi", selectionHandler.SubmitXI)
		r.Get("/winner/{code}", selectionHandler.Winner)

		// Live event stream
		r.Get("/ws", hub.ServeWS(func(code string) bool {
			_, err := store.Get(code)
			return err == nil
		}))
	})

	return r
}

// requestLogger emits one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Msg("request")
	})
}
