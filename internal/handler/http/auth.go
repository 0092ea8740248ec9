package http

import (
	"errors"
	"net/http"

	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/service"
	"github.com/langlens/account-service/internal/store"
	"github.com/langlens/account-service/internal/utils"
	"github.com/langlens/account-service/models"
)

// signup registers a new account and returns a signed token for it.
//
// Responds 201 with {message, token, name, email} on success, 400 when the
// payload is malformed or the email is already taken.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var req signupRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		log.Err(err).Msg("invalid signup request")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.services.AuthService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", req.Email).Msg("signup with existing email")
			writeMessage(w, http.StatusBadRequest, msgEmailExists)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided during signup")
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		default:
			log.Err(err).Msg("error occurred during signup")
			writeInternalError(w)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error occurred during creating token")
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: "User created successfully",
		Token:   token.String(),
		Name:    user.Name,
		Email:   user.Email,
	}, http.StatusCreated)
}

// login authenticates an existing account by email and password.
//
// Both an unknown email and a wrong password produce the same 401 body so a
// caller cannot probe which emails are registered.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var req loginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		log.Err(err).Msg("invalid login request")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound), errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("email", req.Email).Msg("login rejected")
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		default:
			log.Err(err).Msg("error occurred during login")
			writeInternalError(w)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error occurred during creating token")
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: "Login successful",
		Token:   token.String(),
		Name:    user.Name,
		Email:   user.Email,
	}, http.StatusOK)
}
