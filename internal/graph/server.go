package graph

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/graphql-go/handler"
	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/config"
	"github.com/spendwise/spendwise/internal/middleware"
	"github.com/spendwise/spendwise/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server hosts the GraphQL endpoint behind the session middleware.
type Server struct {
	log    *zap.Logger
	server *http.Server
}

type Params struct {
	fx.In

	Log          *zap.Logger
	Config       *config.Config
	Sessions     *middleware.SessionManager
	AuthContext  *auth.Context
	Users        repository.Users
	Transactions repository.Transactions
}

func New(p Params) (*Server, error) {
	r := &resolver{
		users: p.Users,
		txns:  p.Transactions,
		log:   p.Log,
	}

	schema, err := newSchema(r)
	if err != nil {
		return nil, err
	}

	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	root := chi.NewRouter()
	root.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{p.Config.CORSOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	root.Use(p.Sessions.Wrap)
	root.Handle("/graphql", withAuthContext(p.AuthContext, h))

	return &Server{
		log: p.Log,
		server: &http.Server{
			Addr:    p.Config.Addr,
			Handler: root,
		},
	}, nil
}

// withAuthContext makes the session operations reachable from resolvers
// through the request context.
func withAuthContext(ac *auth.Context, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.With(r.Context(), ac)))
	})
}

// RegisterHooks should be invoked by fx
func RegisterHooks(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.server.Shutdown,
	})
}

func (s *Server) Start(_ context.Context) error {
	s.log.Info("serving graphql", zap.String("addr", s.server.Addr))
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			s.log.Error("error starting server", zap.Error(err))
		}
	}()
	return nil
}

// Handler exposes the full middleware chain, used by tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
