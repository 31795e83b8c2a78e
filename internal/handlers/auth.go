package handlers

import (
	"errors"
	"log"
	"net/http"

	"painterflow/internal/auth"
	"painterflow/internal/httpx"

	"github.com/gin-gonic/gin"
)

type credentialsForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (h *Handler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Log in", "Email": ""})
}

func (h *Handler) Login(c *gin.Context) {
	page := func(status int, msg string) {
		render(c, status, "login.html", gin.H{"Title": "Log in", "error": msg, "Email": c.PostForm("email")})
	}

	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, httpx.Violations{"form": "invalid"}, page)
		return
	}

	s, err := h.Auth.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		fail(c, err, page)
		return
	}
	h.signedIn(c, http.StatusOK, s)
}

func (h *Handler) ShowSignup(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up", "Email": ""})
}

func (h *Handler) Signup(c *gin.Context) {
	page := func(status int, msg string) {
		render(c, status, "signup.html", gin.H{"Title": "Sign up", "error": msg, "Email": c.PostForm("email")})
	}

	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, httpx.Violations{"form": "invalid"}, page)
		return
	}

	s, err := h.Auth.SignUp(c.Request.Context(), form.Email, form.Password)
	if errors.Is(err, auth.ErrConfirmationPending) {
		respond(c, http.StatusAccepted, "signup.html",
			gin.H{"Title": "Sign up", "notice": err.Error(), "Email": ""},
			gin.H{"status": "confirmation_pending", "message": err.Error()})
		return
	}
	if err != nil {
		fail(c, err, page)
		return
	}
	h.signedIn(c, http.StatusCreated, s)
}

// Confirm handles the link from the confirmation email.
func (h *Handler) Confirm(c *gin.Context) {
	s, err := h.Auth.Confirm(c.Request.Context(), c.Query("token"))
	if err != nil {
		fail(c, err, func(status int, msg string) {
			render(c, status, "login.html", gin.H{"Title": "Log in", "error": msg, "Email": ""})
		})
		return
	}
	h.signedIn(c, http.StatusOK, s)
}

func (h *Handler) signedIn(c *gin.Context, status int, s *auth.Session) {
	if err := auth.Save(c, s); err != nil {
		fail(c, err, nil)
		return
	}
	done(c, status, "/app", s)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := auth.Clear(c); err != nil {
		log.Printf("logout: %v", err)
	}
	done(c, http.StatusNoContent, "/login", nil)
}
