package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/VENUCODE/paint-ai/internal/adapters/http/dto"
	"github.com/VENUCODE/paint-ai/internal/domain"
	"github.com/VENUCODE/paint-ai/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "RequestID"
	PayloadKey      = "payload"
)

// AddRequestIDAndTime tags the request with an id (taken from X-Request-Id
// or generated) and its start time, both on the gin context and on the
// request context.
func AddRequestIDAndTime() gin.HandlerFunc {

	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()

		}
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Set(RequestIDKey, requestID)

		ctx := observability.WithRequestID(c.Request.Context(), requestID)
		ctx = observability.WithRequestStartTime(ctx, time.Now())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func CheckContentType() gin.HandlerFunc {

	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")

		parts := strings.Split(contentType, ";")
		if len(parts) == 0 || strings.TrimSpace(strings.ToLower(parts[0])) != "application/json" {
			abort(c, dto.BadRequest("invalid content type, expected application/json"))
			return
		}
		c.Next()
	}
}

// CheckContentBody binds the JSON body into T and validates it. Any missing
// required field is reported with missingMsg.
func CheckContentBody[T dto.ImageRequest](maxsize int, missingMsg string) gin.HandlerFunc {
	validate := validator.New()

	return func(c *gin.Context) {

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(maxsize))

		var u T

		err := c.ShouldBindJSON(&u)

		if err != nil {
			var syntanxErr *json.SyntaxError
			var unmarshalTypeErr *json.UnmarshalTypeError
			var maxBytesErr *http.MaxBytesError

			switch {

			case errors.Is(err, io.EOF):
				abort(c, dto.BadRequest(missingMsg))
				return

			case errors.Is(err, io.ErrUnexpectedEOF):
				abort(c, dto.BadRequest("body contains badly-formed json"))
				return

			case errors.As(err, &maxBytesErr):
				abort(c, dto.HttpError{
					StatusCode: http.StatusRequestEntityTooLarge,
					Body:       dto.ErrorResponse{Error: fmt.Sprintf("body must not be larger than %d bytes", maxsize)},
				})
				return

			case errors.As(err, &syntanxErr):
				abort(c, dto.BadRequest(fmt.Sprintf("body contains badly-formed json at character %d", syntanxErr.Offset)))
				return

			case errors.As(err, &unmarshalTypeErr):
				abort(c, dto.BadRequest(fmt.Sprintf("body contains incorrect json type for %q at %d", unmarshalTypeErr.Field, unmarshalTypeErr.Offset)))
				return

			default:
				abort(c, dto.BadRequest(fmt.Sprintf("error happend: %s", err.Error())))
				return

			}
		}

		if err := validate.Struct(u); err != nil {
			abort(c, dto.BadRequest(missingMsg))
			return
		}
		c.Set(PayloadKey, u)
		c.Next()

	}
}

func LoggingRequestMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {

		logger.Info("http_request_start",
			"request_id", c.GetString(RequestIDKey),
			"method", c.Request.Method,
			"user-agent", c.Request.UserAgent(),
			"path", c.FullPath())

		c.Next()

		args := []interface{}{
			"request_id", c.GetString(RequestIDKey),
			"status", c.Writer.Status(),
		}
		if start, ok := observability.GetRequestStartTime(c.Request.Context()); ok {
			args = append(args, "duration_us", int(time.Since(start).Microseconds()))
		}
		logger.Info("http_request_end", args...)
	}
}

func PanicRecoveryMiddleware(logger domain.LoggingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {

		defer func() {
			if r := recover(); r != nil {
				logger.Error("internal server error",
					"request_id", c.GetString(RequestIDKey),
					"method", c.Request.Method,
					"path", c.FullPath(),
					"reason", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)

				abort(c, dto.HttpError{
					StatusCode: http.StatusInternalServerError,
					Body:       dto.ErrorResponse{Error: "internal server error"},
				})
			}
		}()

		c.Next()
	}
}

func abort(c *gin.Context, httpErr dto.HttpError) {
	c.AbortWithStatusJSON(httpErr.StatusCode, httpErr.Body)
}
