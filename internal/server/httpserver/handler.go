package httpserver

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jwtauth/internal/common"
	"github.com/dmitrijs2005/jwtauth/internal/logging"
	"github.com/dmitrijs2005/jwtauth/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const (
	msgAccountCreated  = "Account created successfully"
	msgAccountLoggedIn = "Account logged in"
	msgInvalidBody     = "Invalid request body"
	msgInternalError   = "Internal server error"
)

// Handler holds the route handlers and what they depend on.
type Handler struct {
	accounts      AccountService
	db            Pinger
	logger        logging.Logger
	secureCookies bool
	tokenValidity time.Duration
}

// credentialsRequest accepts JSON and urlencoded form bodies alike.
type credentialsRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// bindCredentials decodes the body by Content-Type. An empty body is not a
// decode error; it simply leaves both fields blank.
func bindCredentials(c *gin.Context) (credentialsRequest, error) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

func (h *Handler) signUp(c *gin.Context) {
	req, err := bindCredentials(c)
	if err != nil {
		c.String(http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := h.accounts.SignUp(c.Request.Context(), req.Email, req.Password); err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "account created", "email", req.Email)
	c.String(http.StatusCreated, msgAccountCreated)
}

func (h *Handler) signIn(c *gin.Context) {
	req, err := bindCredentials(c)
	if err != nil {
		c.String(http.StatusBadRequest, msgInvalidBody)
		return
	}

	session, err := h.accounts.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     common.AccessTokenCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(h.tokenValidity.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	c.String(http.StatusOK, msgAccountLoggedIn)
}

func (h *Handler) testPublic(c *gin.Context) {
	c.String(http.StatusOK, "Success")
}

func (h *Handler) testPrivate(c *gin.Context) {
	if id, ok := auth.IdentityFromContext(c.Request.Context()); ok {
		h.logger.Debug(c.Request.Context(), "private route", "email", id.Email)
	}
	c.String(http.StatusOK, "Success with access token")
}

func (h *Handler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the sample auth application."})
}

func (h *Handler) health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			h.logger.Warn(c.Request.Context(), "health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps service errors onto status codes. Anything unrecognised is
// logged and answered with a bare 500.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrMissingEmail), errors.Is(err, common.ErrMissingPassword),
		errors.Is(err, common.ErrPasswordTooLong):
		c.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrEmailAlreadyExists):
		c.String(http.StatusConflict, common.ErrEmailAlreadyExists.Error())
	case errors.Is(err, common.ErrIncorrectPassword):
		c.String(http.StatusForbidden, common.ErrIncorrectPassword.Error())
	default:
		h.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.String(http.StatusInternalServerError, msgInternalError)
	}
}
