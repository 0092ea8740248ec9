package http

import (
	"errors"
	"net/http"

	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/service"
	"github.com/langlens/account-service/internal/store"
	"github.com/langlens/account-service/internal/utils"
)

// Self-service operations on the authenticated account. All three handlers
// run behind the auth middleware and read the caller's ID from the context.

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeInternalError(w)
		return
	}

	var req changePasswordRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		log.Err(err).Msg("invalid change-password request")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.services.AccountService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Int64("user_id", userID).Msg("change-password with wrong old password")
			writeMessage(w, http.StatusUnauthorized, service.ErrWrongPassword.Error())
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("user_id", userID).Msg("change-password for missing user")
			writeMessage(w, http.StatusNotFound, msgUserNotFound)
			return
		default:
			log.Err(err).Msg("error occurred during changing password")
			writeInternalError(w)
			return
		}
	}

	writeMessage(w, http.StatusOK, "Password changed successfully")
}

func (h *Handler) changeEmail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeInternalError(w)
		return
	}

	var req changeEmailRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		log.Err(err).Msg("invalid change-email request")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.services.AccountService.ChangeEmail(ctx, userID, req.NewEmail, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Int64("user_id", userID).Msg("change-email with wrong password")
			writeMessage(w, http.StatusUnauthorized, service.ErrWrongPassword.Error())
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Int64("user_id", userID).Msg("change-email to taken address")
			writeMessage(w, http.StatusBadRequest, msgEmailExists)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("user_id", userID).Msg("change-email for missing user")
			writeMessage(w, http.StatusNotFound, msgUserNotFound)
			return
		default:
			log.Err(err).Msg("error occurred during changing email")
			writeInternalError(w)
			return
		}
	}

	writeMessage(w, http.StatusOK, "Email changed successfully")
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeInternalError(w)
		return
	}

	if err := h.services.AccountService.DeleteAccount(ctx, userID); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("user_id", userID).Msg("delete for missing user")
			writeMessage(w, http.StatusNotFound, msgUserNotFound)
			return
		default:
			log.Err(err).Msg("error occurred during deleting account")
			writeInternalError(w)
			return
		}
	}

	log.Info().Int64("user_id", userID).Msg("account deleted")
	writeMessage(w, http.StatusOK, "Account deleted successfully")
}
