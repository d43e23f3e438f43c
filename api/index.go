package handler

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	"frontdesk/transport/http/response"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	app     http.Handler
	initErr error
)

// Handler is the serverless entrypoint. The service graph is built on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger("api")

		logger.SetLogLevel(cfg, "api")

		app, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("failed to initialize service")
		response.WithUnhealthy(w)

		return
	}

	app.ServeHTTP(w, r)
}
