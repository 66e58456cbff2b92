package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/gemarathon/backend/auth"
	"github.com/gemarathon/backend/boardsrvc"
)

type HttpServer struct {
	boardSrvc *boardsrvc.BoardService

	jwtKey            []byte
	adminPasswordHash string
	lockFilePath      string

	router *chi.Mux
}

func NewHttpServer(
	boardSrvc *boardsrvc.BoardService,
	jwtKey []byte,
	adminPasswordHash string,
	lockFilePath string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("gemarathon", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://gemarathon.org", "https://www.gemarathon.org"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		boardSrvc:         boardSrvc,
		jwtKey:            jwtKey,
		adminPasswordHash: adminPasswordHash,
		lockFilePath:      lockFilePath,
		router:            router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Get("/board", httpserver.getBoard)
	r.Get("/board/export", httpserver.exportBoard)
	r.Get("/history", httpserver.getHistory)
	r.Get("/lock", httpserver.getLock)
	r.Get("/snapshots", httpserver.getSnapshots)
	r.Post("/auth/login", httpserver.authLogin)
	r.Post("/points", httpserver.addPoints)
	r.Post("/points/batch", httpserver.addPointsBatch)
	r.Post("/completion", httpserver.setCompletion)
	r.Post("/class-bonus", httpserver.addClassBonus)
}

// requireAdmin guards mutating endpoints. The JWT middleware has already
// parsed the bearer token by the time handlers run.
func (httpserver *HttpServer) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if auth.IsAdmin(r.Context()) {
		return true
	}
	writeJsonErrorResponse(w,
		"נדרשת התחברות מנהל",
		http.StatusUnauthorized,
		"unauthorized")
	return false
}
