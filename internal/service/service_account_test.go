package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/mock"
	"github.com/langlens/account-service/internal/store"
	"github.com/langlens/account-service/internal/utils"
	"github.com/langlens/account-service/models"
)

func newTestAccountSvc(t *testing.T, ctrl *gomock.Controller) (AccountService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	return NewAccountService(mockRepo, logger.Nop()), mockRepo
}

func userWithPassword(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{UserID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: hash}
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestAccountService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(userWithPassword(t, "old-password"), nil),
		mockRepo.EXPECT().UpdatePasswordHash(ctx, int64(1), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, passwordHash string) error {
				assert.True(t, utils.CheckPassword(passwordHash, "new-password"))
				return nil
			},
		),
	)

	err := svc.ChangePassword(ctx, 1, "old-password", "new-password")

	require.NoError(t, err)
}

func TestAccountService_ChangePassword_WrongOldPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(userWithPassword(t, "old-password"), nil)

	err := svc.ChangePassword(ctx, 1, "not-the-old-password", "new-password")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAccountService_ChangePassword_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{}, store.ErrUserNotFound)

	err := svc.ChangePassword(ctx, 1, "old", "new")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAccountService_ChangePassword_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ChangePassword(ctx, 1, "", "new"), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.ChangePassword(ctx, 1, "old", ""), ErrInvalidDataProvided)
}

// ── ChangeEmail ──────────────────────────────────────────────────────────────

func TestAccountService_ChangeEmail_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(userWithPassword(t, "secret"), nil),
		mockRepo.EXPECT().UpdateEmail(ctx, int64(1), "new@example.com").Return(nil),
	)

	err := svc.ChangeEmail(ctx, 1, "new@example.com", "secret")

	require.NoError(t, err)
}

func TestAccountService_ChangeEmail_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(userWithPassword(t, "secret"), nil)

	err := svc.ChangeEmail(ctx, 1, "new@example.com", "wrong")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAccountService_ChangeEmail_Taken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(userWithPassword(t, "secret"), nil),
		mockRepo.EXPECT().UpdateEmail(ctx, int64(1), "taken@example.com").Return(store.ErrEmailAlreadyExists),
	)

	err := svc.ChangeEmail(ctx, 1, "taken@example.com", "secret")

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── DeleteAccount ────────────────────────────────────────────────────────────

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteUser(ctx, int64(1)).Return(nil)

	require.NoError(t, svc.DeleteAccount(ctx, 1))
}

func TestAccountService_DeleteAccount_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAccountSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteUser(ctx, int64(1)).Return(store.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, 1), store.ErrUserNotFound)
}
