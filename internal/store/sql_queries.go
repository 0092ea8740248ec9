// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LangLens Authors

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/langlens/account-service/models"
)

const usersTable = "users"

// userColumns is the canonical column order every user SELECT and RETURNING
// clause uses; scans in repository_user.go depend on it.
var userColumns = []string{
	"user_id",
	"name",
	"email",
	"password_hash",
	"reset_otp",
	"reset_otp_expires_at",
	"created_at",
}

func buildInsertUserQuery(pf sq.PlaceholderFormat, user models.User) (string, []any, error) {
	return sq.Insert(usersTable).
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, name, email, password_hash, reset_otp, reset_otp_expires_at, created_at").
		PlaceholderFormat(pf).
		ToSql()
}

func buildSelectUserByEmailQuery(pf sq.PlaceholderFormat, email string) (string, []any, error) {
	return sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		PlaceholderFormat(pf).
		ToSql()
}

func buildSelectUserByIDQuery(pf sq.PlaceholderFormat, userID int64) (string, []any, error) {
	return sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(pf).
		ToSql()
}

func buildUpdatePasswordHashQuery(pf sq.PlaceholderFormat, userID int64, passwordHash string) (string, []any, error) {
	return sq.Update(usersTable).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(pf).
		ToSql()
}

func buildUpdateEmailQuery(pf sq.PlaceholderFormat, userID int64, email string) (string, []any, error) {
	return sq.Update(usersTable).
		Set("email", email).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(pf).
		ToSql()
}

func buildSetResetOTPQuery(pf sq.PlaceholderFormat, userID int64, otp string, expiresAt time.Time) (string, []any, error) {
	return sq.Update(usersTable).
		Set("reset_otp", otp).
		Set("reset_otp_expires_at", expiresAt).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(pf).
		ToSql()
}

// buildResetPasswordQuery overwrites the hash and clears both OTP columns in
// one statement so a completed reset consumes the code atomically.
func buildResetPasswordQuery(pf sq.PlaceholderFormat, userID int64, passwordHash string) (string, []any, error) {
	return sq.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("reset_otp", nil).
		Set("reset_otp_expires_at", nil).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(pf).
		ToSql()
}

func buildDeleteUserQuery(pf sq.PlaceholderFormat, userID int64) (string, []any, error) {
	return sq.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(pf).
		ToSql()
}

func buildClearExpiredOTPsQuery(pf sq.PlaceholderFormat, now time.Time) (string, []any, error) {
	return sq.Update(usersTable).
		Set("reset_otp", nil).
		Set("reset_otp_expires_at", nil).
		Where(sq.NotEq{"reset_otp": nil}).
		Where(sq.LtOrEq{"reset_otp_expires_at": now}).
		PlaceholderFormat(pf).
		ToSql()
}
