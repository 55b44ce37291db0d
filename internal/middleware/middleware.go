package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/hallbook/internal/helpers"
	"github.com/joshua-takyi/hallbook/internal/models"
)

const (
	AccessTokenCookie = "access_token"
	UserKey           = "user"
	RequestIDKey      = "request_id"
)

type TokenValidator interface {
	ValidateToken(token string) (*helpers.Claims, error)
}

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		requestID, _ := c.Get(RequestIDKey)
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "HTTP Request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

// ErrorHandler logs errors attached with c.Error and answers with a generic
// 500 when the handler has not written a response itself.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		requestID, _ := c.Get(RequestIDKey)

		logger.Error("Request error",
			"request_id", requestID,
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		}
	}
}

// tokenFromRequest prefers the Authorization header over the cookie.
func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie(AccessTokenCookie); err == nil {
		return token
	}
	return ""
}

func AuthMiddleware(tokens TokenValidator, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized access"))
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			logger.Debug("Rejected token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized access"))
			return
		}

		c.Set(UserKey, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and never aborts.
func OptionalAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFromRequest(c); token != "" {
			if claims, err := tokens.ValidateToken(token); err == nil {
				c.Set(UserKey, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Unauthorized access"))
			return
		}
		if !claims.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse("Admin access required"))
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*helpers.Claims, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*helpers.Claims)
	return claims, ok
}
