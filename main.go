package main

import (
	"github.com/alexedwards/scs/v2"
	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/config"
	"github.com/spendwise/spendwise/internal/graph"
	"github.com/spendwise/spendwise/internal/middleware"
	"github.com/spendwise/spendwise/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		fx.Provide(
			zap.NewDevelopment,
			config.New,
			repository.New,
			func(s *repository.Store) repository.Users { return s },
			func(s *repository.Store) repository.Transactions { return s },
			func(s *repository.Store) scs.Store { return s.Sessions() },
			middleware.NewSessionManager,
			auth.NewStrategy,
			auth.NewContext,
			graph.New,
		),
		fx.Invoke(graph.RegisterHooks),
	)

	app.Run()
}
