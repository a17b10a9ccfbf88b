package handlers

import (
	"errors"
	"net/http"
	"strings"

	"daily_companion/internal/service"

	"github.com/gin-gonic/gin"
)

// Flash texts shown on the auth forms.
const (
	msgMissingName       = "Please provide your name."
	msgMissingUsername   = "Please provide a username."
	msgMissingPassword   = "Please provide a password"
	msgPasswordMismatch  = "Password and confirmation do not match."
	msgUsernameTaken     = "Username already used. Please provide another username."
	msgBadCredentials    = "Invalid username and/or password"
	errRegisterFailed    = "register_failed"
	errLoginFailed       = "login_failed"
	errSessionSaveFailed = "session_save_failed"
)

type registerInput struct {
	Name         string `form:"name"`
	Username     string `form:"username"`
	Password     string `form:"password"`
	Confirmation string `form:"confirmation"`
}

type loginInput struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// renderForm re-renders an auth form with queued flashes plus an optional
// message for this request. Validation failures answer 200, like any other
// rendered page.
func (h *Handler) renderForm(c *gin.Context, tmpl string, msg string) {
	flashes := h.sessions.TakeFlashes(c.Writer, c.Request)
	if msg != "" {
		flashes = append(flashes, msg)
	}
	c.HTML(http.StatusOK, tmpl, gin.H{"Flashes": flashes})
}

// index shows the welcome page, or the homepage when already signed in.
func (h *Handler) index(c *gin.Context) {
	if _, ok := h.sessions.Current(c.Request); ok {
		c.Redirect(http.StatusFound, "/homepage")
		return
	}
	c.HTML(http.StatusOK, "welcome.html", gin.H{})
}

func (h *Handler) registerForm(c *gin.Context) {
	h.renderForm(c, "register.html", "")
}

// validateRegister returns the first failing field's message, empty when valid.
func validateRegister(in registerInput) string {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return msgMissingName
	case strings.TrimSpace(in.Username) == "":
		return msgMissingUsername
	case in.Password == "":
		return msgMissingPassword
	case in.Password != in.Confirmation:
		return msgPasswordMismatch
	}
	return ""
}

func (h *Handler) register(c *gin.Context) {
	var in registerInput
	_ = c.ShouldBind(&in)

	if msg := validateRegister(in); msg != "" {
		h.renderForm(c, "register.html", msg)
		return
	}

	u, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Name:     strings.TrimSpace(in.Name),
		Username: strings.TrimSpace(in.Username),
		Password: in.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.renderForm(c, "register.html", msgUsernameTaken)
			return
		}
		h.logAndError(c, errRegisterFailed, err, "username", in.Username)
		return
	}

	// a fresh account is signed in right away
	if err := h.sessions.SignIn(c.Writer, c.Request, sessionIdentity(u.ID, u.Name)); err != nil {
		h.logAndError(c, errSessionSaveFailed, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/homepage")
}

func (h *Handler) loginForm(c *gin.Context) {
	// reaching the login page forgets any previous session
	_ = h.sessions.Clear(c.Writer, c.Request)
	h.renderForm(c, "login.html", "")
}

// login forgets any existing session on every outcome: a failed attempt
// leaves the visitor signed out, a successful one replaces the session
// wholesale inside SignIn.
func (h *Handler) login(c *gin.Context) {
	var in loginInput
	_ = c.ShouldBind(&in)

	if strings.TrimSpace(in.Username) == "" {
		_ = h.sessions.Clear(c.Writer, c.Request)
		h.renderForm(c, "login.html", msgMissingUsername)
		return
	}
	if in.Password == "" {
		_ = h.sessions.Clear(c.Writer, c.Request)
		h.renderForm(c, "login.html", msgMissingPassword)
		return
	}

	u, err := h.services.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_rejected", "username", in.Username)
			}
			_ = h.sessions.Clear(c.Writer, c.Request)
			h.renderForm(c, "login.html", msgBadCredentials)
			return
		}
		h.logAndError(c, errLoginFailed, err, "username", in.Username)
		return
	}

	if err := h.sessions.SignIn(c.Writer, c.Request, sessionIdentity(u.ID, u.Name)); err != nil {
		h.logAndError(c, errSessionSaveFailed, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/homepage")
}

func (h *Handler) logout(c *gin.Context) {
	_ = h.sessions.Clear(c.Writer, c.Request)
	c.Redirect(http.StatusFound, "/")
}
