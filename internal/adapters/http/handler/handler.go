package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"

	"github.com/VENUCODE/paint-ai/internal/adapters/http/dto"
	"github.com/VENUCODE/paint-ai/internal/adapters/http/middleware"
	"github.com/VENUCODE/paint-ai/internal/domain"
	"github.com/gin-gonic/gin"
)

type ImageEditUsecase interface {
	Edit(ctx context.Context, req domain.EditRequest) (json.RawMessage, error)
}

type ImageHandler struct {
	ImageSvc       ImageEditUsecase
	Credentials    domain.CredentialResolver
	Logger         domain.LoggingRepository
	MaxAllowedSize int
}

func NewImageHandler(
	imgsvc ImageEditUsecase,
	credentials domain.CredentialResolver,
	logger domain.LoggingRepository,
	maxallowedsize int,
) *ImageHandler {
	return &ImageHandler{ImageSvc: imgsvc, Credentials: credentials, Logger: logger, MaxAllowedSize: maxallowedsize}
}

func (h *ImageHandler) HomePageHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Message: "server is running"})
}

// StyleHandler serves every image route. The style picks the prompt
// template and the failure wording; the payload has already been validated
// by middleware.CheckContentBody.
func (h *ImageHandler) StyleHandler(style domain.Style) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := h.Logger.With("style", style.String(), "request_id", c.GetString(middleware.RequestIDKey))

		req := c.MustGet(middleware.PayloadKey).(dto.ImageRequest)
		imageURL, preferences := req.Fields()

		credential, err := h.Credentials.Resolve(c.GetHeader("Authorization"))
		if err != nil {
			h.fail(c, log, style, err)
			return
		}

		prompt := style.BuildPrompt(preferences)
		log.Info("prompt_generated", "prompt", prompt)

		result, err := h.ImageSvc.Edit(c.Request.Context(), domain.EditRequest{
			ImageURL:   imageURL,
			Prompt:     prompt,
			Credential: credential,
		})
		if err != nil {
			h.fail(c, log, style, err)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", result)
	}
}

func (h *ImageHandler) fail(c *gin.Context, log domain.LoggingRepository, style domain.Style, err error) {
	httpErr := dto.MapErr(err, style.FailureMessage())
	log.Error("image_request_failed", "status", httpErr.StatusCode, "reason", err.Error())
	c.JSON(httpErr.StatusCode, httpErr.Body)
}

func (h *ImageHandler) HealthHandler(c *gin.Context) {

	var memStat runtime.MemStats
	runtime.ReadMemStats(&memStat)

	var resp dto.HealthResponse
	resp.Status.StatusCode = http.StatusOK
	resp.Memory.AllocMB = memStat.Alloc / 1024 / 1024
	resp.Memory.TotalAllocMB = memStat.TotalAlloc / 1024 / 1024
	resp.Memory.SysMB = memStat.Sys / 1024 / 1024
	resp.Memory.NumGC = memStat.NumGC
	resp.Memory.NumGoroutine = runtime.NumGoroutine()

	c.JSON(http.StatusOK, resp)
}
