package main

import (
	"log"
	"net/http"

	"github.com/FatimaNisar411/LinkVentory/internal/api"
	"github.com/FatimaNisar411/LinkVentory/internal/auth"
	"github.com/FatimaNisar411/LinkVentory/internal/config"
	"github.com/FatimaNisar411/LinkVentory/internal/db"
	"github.com/FatimaNisar411/LinkVentory/internal/handler"
	"github.com/FatimaNisar411/LinkVentory/internal/store"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			// The signing key is validated here, once, at startup. A missing
			// or empty key must never surface as a per-request failure.
			tokens, err := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.Algorithm, cfg.Auth.TokenLifetime)
			if err != nil {
				return err
			}
			hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

			userStore := store.NewUserStore(database)
			linkStore := store.NewLinkStore(database)
			categoryStore := store.NewCategoryStore(database)

			authMiddleware := auth.NewMiddleware(tokens, userStore)

			router := handler.NewRouter(handler.Deps{
				API: api.Deps{
					AuthMiddleware: authMiddleware,
					Hasher:         hasher,
					Tokens:         tokens,
					UserStore:      userStore,
					LinkStore:      linkStore,
					CategoryStore:  categoryStore,
				},
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
