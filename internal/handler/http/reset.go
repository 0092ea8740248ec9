// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LangLens Authors

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

// forgotPassword starts the password-reset flow: generates a one-time code,
// stores it against the account and emails it to the address on file.
//
// An unknown email is a 404. This deliberately confirms account existence;
// the reset flow is unusable without that signal in the UI.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var req forgotPasswordRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		log.Err(err).Msg("invalid forgot-password request")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.services.ResetService.RequestReset(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("email", req.Email).Msg("forgot-password for unknown email")
			writeMessage(w, http.StatusNotFound, msgUserNotFound)
			return
		default:
			log.Err(err).Msg("error occurred during requesting password reset")
			writeInternalError(w)
			return
		}
	}

	utils.WriteJSON(w, models.StatusResponse{
		Success: true,
		Message: "OTP sent to your email",
	}, http.StatusOK)
}

// verifyOTP checks a one-time code against the stored one without consuming
// it, so the UI can gate the new-password form.
func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var req verifyOTPRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		log.Err(err).Msg("invalid verify-otp request")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.services.ResetService.VerifyOTP(ctx, req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpiredOTP):
			log.Err(err).Str("email", req.Email).Msg("otp verification rejected")
			writeMessage(w, http.StatusBadRequest, msgInvalidOrExpired)
			return
		default:
			log.Err(err).Msg("error occurred during verifying otp")
			writeInternalError(w)
			return
		}
	}

	utils.WriteJSON(w, models.StatusResponse{Success: true}, http.StatusOK)
}

// resetPassword completes the reset flow: re-checks the one-time code and
// replaces the password hash, clearing the code in the same statement.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var req resetPasswordRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		log.Err(err).Msg("invalid reset-password request")
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.services.ResetService.CompleteReset(ctx, req.Email, req.OTP, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpiredOTP):
			log.Err(err).Str("email", req.Email).Msg("password reset rejected")
			writeMessage(w, http.StatusBadRequest, msgInvalidOrExpired)
			return
		default:
			log.Err(err).Msg("error occurred during resetting password")
			writeInternalError(w)
			return
		}
	}

	utils.WriteJSON(w, models.StatusResponse{
		Success: true,
		Message: "Password reset successful",
	}, http.StatusOK)
}
