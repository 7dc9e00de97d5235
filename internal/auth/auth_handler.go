package auth

import (
	"net/http"
	"strings"

	autherrors "go-resto/internal/auth/errors"
	"go-resto/internal/shared/apperror"
	"go-resto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type Handler struct {
	service       Service
	secureCookies bool
	accessMaxAge  int
	refreshMaxAge int
	logger        *zap.Logger
}

// NewHandler builds the auth handler. Cookie lifetimes follow the token TTLs.
func NewHandler(service Service, secureCookies bool, accessMaxAge, refreshMaxAge int, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{
		service:       service,
		secureCookies: secureCookies,
		accessMaxAge:  accessMaxAge,
		refreshMaxAge: refreshMaxAge,
		logger:        l,
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// isWebClient decides whether tokens also travel as HttpOnly cookies.
func isWebClient(c *gin.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.GetHeader("X-Client-Type")), "web")
}

func (h *Handler) setTokenCookies(c *gin.Context, pair TokenPair) {
	h.setCookie(c, accessCookie, pair.AccessToken, h.accessMaxAge)
	h.setCookie(c, refreshCookie, pair.RefreshToken, h.refreshMaxAge)
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, apperror.ValidationMessage(err), err.Error())
		return
	}

	pair, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if isWebClient(c) {
		h.setTokenCookies(c, pair)
	}
	response.Success(c, http.StatusOK, LoginResponse{User: user, TokenPair: pair}, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	var token string
	if isWebClient(c) {
		token, _ = c.Cookie(refreshCookie)
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		h.writeServiceError(c, autherrors.ErrMissingRefreshToken)
		return
	}

	pair, user, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if isWebClient(c) {
		h.setTokenCookies(c, pair)
	}
	response.Success(c, http.StatusOK, LoginResponse{User: user, TokenPair: pair}, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, accessCookie, "", -1)
	h.setCookie(c, refreshCookie, "", -1)
	response.SuccessWithMessage(c, http.StatusOK, "Logged out", nil)
}
