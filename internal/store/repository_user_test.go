// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LangLens Authors

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/models"
)

func newMockRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, smock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	storeDB := &DB{DB: db, driver: driverPostgres, logger: logger.Nop()}
	return NewUserRepository(storeDB, logger.Nop()), smock
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).AddRow(
		user.UserID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.ResetOTP,
		user.ResetOTPExpiresAt,
		user.CreatedAt,
	)
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserRepository_CreateUser_Success(t *testing.T) {
	repo, smock := newMockRepo(t)

	want := models.User{
		UserID:       1,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}

	smock.ExpectQuery("INSERT INTO users").
		WithArgs("Alice", "alice@example.com", "hash").
		WillReturnRows(userRows(want))

	got, err := repo.CreateUser(context.Background(), models.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	})

	require.NoError(t, err)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Email, got.Email)
	assert.Nil(t, got.ResetOTP)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	repo, smock := newMockRepo(t)

	smock.ExpectQuery("INSERT INTO users").
		WillReturnError(uniqueViolation())

	_, err := repo.CreateUser(context.Background(), models.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NoError(t, smock.ExpectationsWereMet())
}

// ── Find ─────────────────────────────────────────────────────────────────────

func TestUserRepository_FindUserByEmail_Success(t *testing.T) {
	repo, smock := newMockRepo(t)

	otp := "123456"
	expiresAt := time.Date(2026, 8, 31, 12, 10, 0, 0, time.UTC)
	want := models.User{
		UserID:            1,
		Name:              "Alice",
		Email:             "alice@example.com",
		PasswordHash:      "hash",
		ResetOTP:          &otp,
		ResetOTPExpiresAt: &expiresAt,
	}

	smock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice@example.com").
		WillReturnRows(userRows(want))

	got, err := repo.FindUserByEmail(context.Background(), "alice@example.com")

	require.NoError(t, err)
	require.NotNil(t, got.ResetOTP)
	assert.Equal(t, "123456", *got.ResetOTP)
	require.NotNil(t, got.ResetOTPExpiresAt)
	assert.True(t, expiresAt.Equal(*got.ResetOTPExpiresAt))
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	repo, smock := newMockRepo(t)

	smock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByID_NotFound(t *testing.T) {
	repo, smock := newMockRepo(t)

	smock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, smock.ExpectationsWereMet())
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestUserRepository_UpdatePasswordHash(t *testing.T) {
	repo, smock := newMockRepo(t)

	smock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("newhash", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePasswordHash(context.Background(), 1, "newhash")

	require.NoError(t, err)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePasswordHash_UserGone(t *testing.T) {
	repo, smock := newMockRepo(t)

	smock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("newhash", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePasswordHash(context.Background(), 404, "newhash")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_UpdateEmail_Taken(t *testing.T) {
	repo, smock := newMockRepo(t)

	smock.ExpectExec("UPDATE users SET email").
		WithArgs("taken@example.com", int64(1)).
		WillReturnError(uniqueViolation())

	err := repo.UpdateEmail(context.Background(), 1, "taken@example.com")

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_SetResetOTP(t *testing.T) {
	repo, smock := newMockRepo(t)

	expiresAt := time.Date(2026, 8, 31, 12, 10, 0, 0, time.UTC)

	smock.ExpectExec("UPDATE users SET reset_otp").
		WithArgs("123456", expiresAt, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetResetOTP(context.Background(), 1, "123456", expiresAt)

	require.NoError(t, err)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_ResetPassword_ClearsOTP(t *testing.T) {
	repo, smock := newMockRepo(t)

	smock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("newhash", nil, nil, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ResetPassword(context.Background(), 1, "newhash")

	require.NoError(t, err)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_DeleteUser(t *testing.T) {
	repo, smock := newMockRepo(t)

	smock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteUser(context.Background(), 1))
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_DeleteUser_Gone(t *testing.T) {
	repo, smock := newMockRepo(t)

	smock.ExpectExec("DELETE FROM users").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 404), ErrUserNotFound)
	assert.NoError(t, smock.ExpectationsWereMet())
}

func TestUserRepository_ClearExpiredOTPs(t *testing.T) {
	repo, smock := newMockRepo(t)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	smock.ExpectExec("UPDATE users SET reset_otp").
		WithArgs(nil, nil, now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	cleared, err := repo.ClearExpiredOTPs(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), cleared)
	assert.NoError(t, smock.ExpectationsWereMet())
}
