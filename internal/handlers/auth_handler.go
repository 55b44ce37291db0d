package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/hallbook/internal/middleware"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/joshua-takyi/hallbook/internal/services"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(a *services.AuthService, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		res, err := a.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			case errors.Is(err, services.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
			default:
				_ = c.Error(err)
			}
			return
		}

		maxAge := int(time.Until(res.ExpiresAt).Seconds())
		c.SetCookie(middleware.AccessTokenCookie, res.Token, maxAge, "/", "", secureCookies, true)
		c.JSON(http.StatusOK, models.SuccessResponse(res, "Signed in successfully"))
	}
}

func Logout(a *services.AuthService, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.Logout(c.Request.Context()); err != nil {
			_ = c.Error(err)
			return
		}
		c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", secureCookies, true)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}

// Session reports the caller's token identity, falling back to the
// persisted session slot when no token is presented.
func Session(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := middleware.CurrentUser(c); ok {
			c.JSON(http.StatusOK, models.SuccessResponse(claims.Session(), ""))
			return
		}

		session, err := a.CurrentSession(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		if session == nil {
			session = &models.Session{}
		}
		c.JSON(http.StatusOK, models.SuccessResponse(session, ""))
	}
}
