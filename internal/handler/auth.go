package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/chobyoungjae/interface/internal/apierror"
	"github.com/chobyoungjae/interface/internal/dto"
	"github.com/chobyoungjae/interface/internal/service"
	"github.com/chobyoungjae/interface/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc          service.AuthService
	cookieMaxAge int
	secureCookie bool
}

func NewAuthHandler(svc service.AuthService, cookieMaxAgeSeconds int, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieMaxAge: cookieMaxAgeSeconds, secureCookie: secureCookie}
}

// Login checks the shared password and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.PasswordLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, apierror.New("비밀번호를 입력해주세요."))
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Password, c.ClientIP())
	if err != nil {
		var rl *service.RateLimitedError
		switch {
		case errors.As(err, &rl):
			retry := int(math.Ceil(rl.RetryAfter.Seconds()))
			c.Header("Retry-After", fmt.Sprint(retry))
			c.JSON(http.StatusTooManyRequests, apierror.NewRateLimited(rl.Error(), retry))
		case errors.Is(err, service.ErrBadCredential):
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("인증 중 오류가 발생했습니다."))
		}
		return
	}

	h.setSessionCookie(c, token, h.cookieMaxAge)
	c.JSON(http.StatusOK, dto.PasswordLoginResponse{Success: true})
}

// Logout clears the session cookie. The token itself simply expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.PasswordLoginResponse{Success: true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", h.secureCookie, true)
}
