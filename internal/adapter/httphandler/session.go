package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/session (200 OK, 204 No content)
// POST v1/session/login JSON (200 OK, 400 Bad request, 422 Unprocessable entity)
// POST v1/session/register JSON (201 Created, 400 Bad request, 422 Unprocessable entity)
// DELETE v1/session (200 OK)

type SessionHandler struct {
	session port.SessionService
	reader  port.SessionReader
}

func RegisterSession(
	mux *http.ServeMux, session port.SessionService, reader port.SessionReader,
) {
	h := SessionHandler{session, reader}
	mux.HandleFunc("GET /v1/session", h.GetSession)
	mux.HandleFunc("POST /v1/session/login", h.Login)
	mux.HandleFunc("POST /v1/session/register", h.Register)
	mux.HandleFunc("DELETE /v1/session", h.Logout)
}

func (h SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.GetSession"
	log := slog.With("op", op)

	user, ok := h.reader.User()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, log, toAPIUser(user))
}

func (h SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.Login"
	log := slog.With("op", op)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	user, err := h.session.Login(domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if writeFieldErrors(w, log, err) {
			return
		}
		http.Error(w, "login failed", http.StatusInternalServerError)
		log.Error("login failed", "err", err)
		return
	}
	writeJSON(w, log, toAPIUser(user))
}

func (h SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.Register"
	log := slog.With("op", op)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	user, err := h.session.Register(domain.Registration{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		if writeFieldErrors(w, log, err) {
			return
		}
		http.Error(w, "registration failed", http.StatusInternalServerError)
		log.Error("registration failed", "err", err)
		return
	}

	writeJSONStatus(w, log, http.StatusCreated, toAPIUser(user))
}

func (h SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout()
	w.WriteHeader(http.StatusOK)
}
