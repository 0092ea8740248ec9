package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and mutation against the users table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - unique-constraint rejection on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.placeholder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error executing insert")
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = scanUser(row, &user); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning inserted user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches exactly.
//
// Error handling:
//   - empty result set → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.placeholder(), email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, query, args)
}

// FindUserByID retrieves the user record with the given primary key.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.db.placeholder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, query, args)
}

// UpdatePasswordHash overwrites the stored password hash for the user.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	query, args, err := buildUpdatePasswordHashQuery(r.db.placeholder(), userID, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*userRepository.UpdatePasswordHash", query, args)
}

// UpdateEmail overwrites the stored email for the user.
//
// Error handling:
//   - unique-constraint rejection → [ErrEmailAlreadyExists].
//   - zero rows touched → [ErrUserNotFound].
func (r *userRepository) UpdateEmail(ctx context.Context, userID int64, email string) error {
	query, args, err := buildUpdateEmailQuery(r.db.placeholder(), userID, email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*userRepository.UpdateEmail", query, args)
}

// SetResetOTP stores a pending reset code with its expiry. A previously
// pending code is overwritten; last write wins.
func (r *userRepository) SetResetOTP(ctx context.Context, userID int64, otp string, expiresAt time.Time) error {
	query, args, err := buildSetResetOTPQuery(r.db.placeholder(), userID, otp, expiresAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*userRepository.SetResetOTP", query, args)
}

// ResetPassword overwrites the password hash and clears the pending reset
// code in one statement, consuming the code.
func (r *userRepository) ResetPassword(ctx context.Context, userID int64, passwordHash string) error {
	query, args, err := buildResetPasswordQuery(r.db.placeholder(), userID, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*userRepository.ResetPassword", query, args)
}

// DeleteUser permanently removes the user record.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	query, args, err := buildDeleteUserQuery(r.db.placeholder(), userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*userRepository.DeleteUser", query, args)
}

// ClearExpiredOTPs clears every reset code whose expiry is at or before now
// and returns the number of rows touched.
func (r *userRepository) ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClearExpiredOTPsQuery(r.db.placeholder(), now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearExpiredOTPs").Msg("error clearing expired reset codes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	cleared, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return cleared, nil
}

// findOne runs a single-row user SELECT and maps an empty result to
// [ErrUserNotFound].
func (r *userRepository) findOne(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error executing select")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// execOne runs a single-row mutation and maps zero affected rows to
// [ErrUserNotFound] and unique-constraint rejections to
// [ErrEmailAlreadyExists].
func (r *userRepository) execOne(ctx context.Context, caller, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error executing statement")
		if r.db.isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// scanUser reads the canonical user column set (see userColumns) from row.
func scanUser(row *sql.Row, user *models.User) error {
	return row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.ResetOTP,
		&user.ResetOTPExpiresAt,
		&user.CreatedAt,
	)
}
