package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionCookieName = "__course_staffing_session"

// CreateSession issues a fresh interpreter session and hands the client its
// token as an http-only cookie. The caller still has to run the login command
// before anything privileged works.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	subject := uuid.NewString()
	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiration),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
		Subject:   subject,
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	h.successResponse(w, r, "Session created.", nil)
}

// RunCommand executes one command line in the caller's session and returns
// the interpreter's response text verbatim.
func (h *Handler) RunCommand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Command string `json:"command" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	subject := r.Context().Value(SubCtxKey).(string)
	sess := h.sessionFor(subject)

	response := h.interpreter.Command(sess, req.Command)

	h.successResponse(w, r, "Command executed.", struct {
		Response string `json:"response"`
	}{Response: response})
}
