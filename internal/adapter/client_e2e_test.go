package adapter

import (
	"context"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langlens/account-service/internal/config"
	handler "github.com/langlens/account-service/internal/handler/http"
	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/service"
	"github.com/langlens/account-service/internal/store"
	"github.com/langlens/account-service/models"
)

// memoryUserRepository is a map-backed store.UserRepository for end-to-end
// tests that exercise the full client-to-service path without a database.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{nextID: 1, users: make(map[int64]models.User)}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	user.UserID = m.nextID
	user.CreatedAt = time.Now()
	m.nextID++
	m.users[user.UserID] = user
	return user, nil
}

func (m *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memoryUserRepository) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryUserRepository) UpdatePasswordHash(_ context.Context, userID int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	m.users[userID] = user
	return nil
}

func (m *memoryUserRepository) UpdateEmail(_ context.Context, userID int64, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, existing := range m.users {
		if existing.Email == email && id != userID {
			return store.ErrEmailAlreadyExists
		}
	}

	user, ok := m.users[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	user.Email = email
	m.users[userID] = user
	return nil
}

func (m *memoryUserRepository) SetResetOTP(_ context.Context, userID int64, otp string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	user.ResetOTP = &otp
	user.ResetOTPExpiresAt = &expiresAt
	m.users[userID] = user
	return nil
}

func (m *memoryUserRepository) ResetPassword(_ context.Context, userID int64, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.ResetOTP = nil
	user.ResetOTPExpiresAt = nil
	m.users[userID] = user
	return nil
}

func (m *memoryUserRepository) DeleteUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.users, userID)
	return nil
}

func (m *memoryUserRepository) ClearExpiredOTPs(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cleared int64
	for id, user := range m.users {
		if user.ResetOTP != nil && user.ResetOTPExpiresAt != nil && !user.ResetOTPExpiresAt.After(now) {
			user.ResetOTP = nil
			user.ResetOTPExpiresAt = nil
			m.users[id] = user
			cleared++
		}
	}
	return cleared, nil
}

// captureSender records outbound mail so the test can read the emailed code.
type captureSender struct {
	mu       sync.Mutex
	lastBody string
}

func (c *captureSender) Send(_ context.Context, _, _, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastBody = body
	return nil
}

func (c *captureSender) lastOTP(t *testing.T) string {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	match := regexp.MustCompile(`\d{6}`).FindString(c.lastBody)
	require.NotEmpty(t, match, "no code found in mail body")
	return match
}

// TestAccountLifecycle drives the whole account flow through the REST client
// against a real handler, service, and in-memory store.
func TestAccountLifecycle(t *testing.T) {
	sender := &captureSender{}
	storages := &store.Storages{UserRepository: newMemoryUserRepository()}

	services := service.NewServices(storages, sender, config.App{
		TokenSignKey:  "e2e-sign-key",
		TokenIssuer:   "account-service-e2e",
		TokenDuration: time.Hour,
	}, logger.Nop())

	srv := httptest.NewServer(handler.NewHandler(services, logger.Nop()).Init())
	defer srv.Close()

	c := NewHTTPAccountClient(HTTPClientConfig{BaseURL: srv.URL})
	ctx := context.Background()

	// signup and login
	auth, err := c.Register(ctx, "Alice", "alice@example.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", auth.Message)
	assert.NotEmpty(t, c.Token())

	_, err = c.Register(ctx, "Alice", "alice@example.com", "pw1")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = c.Login(ctx, "alice@example.com", "pw1")
	require.NoError(t, err)

	// change password and log in with the new one
	require.NoError(t, c.ChangePassword(ctx, "pw1", "pw2"))

	_, err = c.Login(ctx, "alice@example.com", "pw1")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Login(ctx, "alice@example.com", "pw2")
	require.NoError(t, err)

	// forgot-password flow
	require.NoError(t, c.ForgotPassword(ctx, "alice@example.com"))
	otp := sender.lastOTP(t)

	assert.ErrorIs(t, c.VerifyOTP(ctx, "alice@example.com", "000000"), ErrBadRequest)
	require.NoError(t, c.VerifyOTP(ctx, "alice@example.com", otp))
	require.NoError(t, c.ResetPassword(ctx, "alice@example.com", otp, "pw3"))

	// the code is consumed by the reset
	assert.ErrorIs(t, c.ResetPassword(ctx, "alice@example.com", otp, "pw4"), ErrBadRequest)

	_, err = c.Login(ctx, "alice@example.com", "pw3")
	require.NoError(t, err)

	// change email, then delete the account
	require.NoError(t, c.ChangeEmail(ctx, "alice2@example.com", "pw3"))

	_, err = c.Login(ctx, "alice@example.com", "pw3")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Login(ctx, "alice2@example.com", "pw3")
	require.NoError(t, err)

	require.NoError(t, c.DeleteAccount(ctx))

	_, err = c.Login(ctx, "alice2@example.com", "pw3")
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = c.ForgotPassword(ctx, "alice2@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
