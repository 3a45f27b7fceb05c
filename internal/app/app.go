package app

import (
	"authd/internal/app/deps"
	"authd/internal/app/services"
	"authd/internal/http/handlers"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", handlers.NewSignUpWithEmail(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/login", handlers.NewLogInWithEmail(s.LogInWithEmail))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		handlers.NewSendPasswordResetToken(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", handlers.NewResetPassword(s.ResetPassword))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
