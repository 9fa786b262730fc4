package application

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	router "github.com/VENUCODE/paint-ai/internal/adapters/http"
	"github.com/VENUCODE/paint-ai/internal/adapters/http/handler"
	"github.com/VENUCODE/paint-ai/internal/domain"
	"github.com/VENUCODE/paint-ai/internal/infrastructure/ai"
	config "github.com/VENUCODE/paint-ai/internal/infrastructure/configs"
	"github.com/VENUCODE/paint-ai/internal/infrastructure/fetch"
	"github.com/VENUCODE/paint-ai/internal/infrastructure/imageproc"
	"github.com/VENUCODE/paint-ai/internal/usecase"
	"github.com/VENUCODE/paint-ai/pkg/logger"
	"github.com/gin-gonic/gin"
)

type App struct {
	Cfg *config.Config
}

// Handler builds the full gin engine from the configuration.
func (a App) Handler(log domain.LoggingRepository) http.Handler {
	gin.SetMode(a.Cfg.GinMode)

	httpClient := &http.Client{}

	imageEditSvc := usecase.NewImageEditService(
		fetch.NewHTTPFetcher(httpClient),
		imageproc.NewPNGNormalizer(),
		ai.NewImagesClient(httpClient, a.Cfg.OpenAIImagesURL, a.Cfg.OpenAIImageModel),
		log)

	credentials := domain.NewCredentialResolver(a.Cfg.Policy(), a.Cfg.OpenAIAPIKey)

	h := handler.NewImageHandler(imageEditSvc, credentials, log, a.Cfg.MaxAllowedSize)

	return router.SetupRoutes(router.RouterConfig{ImageHandler: h})
}

func (a App) Run() error {

	level, err := logger.ParseLevel(a.Cfg.LogLevel)
	if err != nil {
		return err
	}
	log, err := logger.NewLogger(a.Cfg.LogFile, level)
	if err != nil {
		return err
	}

	if a.Cfg.Policy() == domain.CredentialHeaderOverride {
		log.Warn("credential_policy", "policy", a.Cfg.CredentialPolicy,
			"reason", "caller Authorization header is forwarded to the image api")
	}
	if a.Cfg.OpenAIAPIKey == "" {
		log.Warn("credential_policy", "reason", "OPENAI_API_KEY not set, requests without Authorization will be rejected")
	}

	server := &http.Server{
		Addr:    a.Cfg.Addr(),
		Handler: a.Handler(log),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server_started", "addr", server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start the server", "reason", err.Error())
			serverErr <- err
		}
		close(serverErr)
	}()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigchan)

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case sig := <-sigchan:
		log.Info("shutdown_signal_received", "signal", sig.String())
	}

	shutdownctx, shutdowncancelFunc := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout())
	defer shutdowncancelFunc()
	if err := server.Shutdown(shutdownctx); err != nil {
		log.Error("server closed with error", "reason", err.Error())
		return err
	}

	log.Info("server_stopped")
	return nil
}
