package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/logger"
)

// ErrorHandler renders the last error attached with c.Error once the chain
// has run, unless a response body was already written. Non-AppErrors are
// logged and reported as INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		appErr := asAppError(last.Err)
		if appErr.Internal != nil || appErr.Code == apperrors.ErrInternalServer.Code {
			cause := last.Err
			if appErr.Internal != nil {
				cause = appErr.Internal
			}
			logger.Get().Errorw("request failed",
				"request_id", c.GetString(requestIDKey),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"code", appErr.Code,
				"error", cause.Error(),
			)
		}

		c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
			"error": gin.H{"code": appErr.Code, "message": appErr.Message},
		})
	}
}

// asAppError returns the AppError in err's chain, or ErrInternalServer.
func asAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.ErrInternalServer
}
