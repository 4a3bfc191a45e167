package cmd

import (
	"context"
	"errors"
	"fmt"

	"artist-site/config"
	"artist-site/database"
	adminapi "artist-site/internal/api/admin"
	authapi "artist-site/internal/api/auth"
	feedbackapi "artist-site/internal/api/feedback"
	routes "artist-site/internal/app/http"
	"artist-site/internal/domain/access"
	"artist-site/internal/domain/admin"
	"artist-site/internal/domain/content"
	"artist-site/internal/domain/feedback"
	"artist-site/internal/infra/mail"
	"artist-site/internal/infra/redisstore"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.RequireServerEnv(); err != nil {
			return err
		}
		if config.APP_ENV == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		database.InitDB()
		if err := checkDefaultBiography(cmd.Context()); err != nil {
			if config.REQUIRE_DEFAULT_BIOGRAPHY {
				return err
			}
			log.Error().Err(err).Msg("❌ /bio will fail until a biography with id=1 is created through /admin")
		}

		store, closeStore, err := sessionStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()
		sessions := access.NewSessions([]byte(config.SESSION_SECRET), config.SESSION_TTL, store)
		authenticator := access.NewAuthenticator(access.Credentials{
			Username:     config.ADMIN_USERNAME,
			Password:     config.ADMIN_PASSWORD,
			PasswordHash: config.ADMIN_PASSWORD_HASH,
		})

		transport := mail.NewSMTPTransport(mail.SMTPConfig{
			Host:     config.MAIL_SERVER,
			Port:     config.MAIL_PORT,
			UseTLS:   config.MAIL_USE_TLS,
			Username: config.MAIL_USERNAME,
			Password: config.MAIL_PASSWORD,
		})
		dispatcher := feedback.NewDispatcher(transport, config.MAIL_DEFAULT_SENDER, config.MAIL_USERNAME, config.MAIL_TIMEOUT)

		r := routes.NewEngine(routes.Handlers{
			Auth:     authapi.NewHandler(authenticator, sessions, config.APP_ENV != "development"),
			Feedback: feedbackapi.NewHandler(dispatcher),
			Admin:    adminapi.NewHandler(admin.NewSurface(database.DB, access.NewGuard(sessions))),
		}, config.CORS_ORIGIN)

		log.Info().Str("port", config.PORT).Str("env", config.APP_ENV).Msg("🚀 Server starting")
		return r.Run(":" + config.PORT)
	},
}

// sessionStore picks the configured store; the returned func releases it.
func sessionStore(ctx context.Context) (access.SessionStore, func(), error) {
	if config.SESSION_STORE != "redis" {
		return access.NewMemoryStore(), func() {}, nil
	}
	store := redisstore.NewSessionStore(config.REDIS_ADDR, config.REDIS_PASSWORD, config.REDIS_DB)
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("redis session store close failed")
		}
	}
	if err := store.Connect(ctx); err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("redis session store: %w", err)
	}
	log.Info().Str("addr", config.REDIS_ADDR).Msg("✅ Redis session store connected")
	return store, closeStore, nil
}

func checkDefaultBiography(ctx context.Context) error {
	_, err := content.NewQueries(database.DB).DefaultBiography(ctx)
	if errors.Is(err, content.ErrMisconfiguredContent) {
		return err
	}
	if err != nil {
		return fmt.Errorf("check default biography: %w", err)
	}
	return nil
}
