package web

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/habiliai/exampleproject/core"
	"github.com/habiliai/exampleproject/internal/mylog"
)

func newAccessLogMiddleware(logger *mylog.Logger, clock core.Clock) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := clock()
			requestID := uuid.NewString()

			next.ServeHTTP(w, r)

			logger.WithGroup("http").Info("call",
				slog.String("requestId", requestID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("duration", clock().Sub(startTime)),
			)
		})
	}
}

func newRecoveryMiddleware(logger *mylog.Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)),
		handlers.PrintRecoveryStack(true),
	)
}
