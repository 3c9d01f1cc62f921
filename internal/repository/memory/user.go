package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

type userRepositoryImpl struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository(seed ...user.User) user.UserRepository {
	r := &userRepositoryImpl{users: make(map[string]user.User)}
	for _, u := range seed {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *userRepositoryImpl) findByEmail(email string) (user.User, bool) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return user.User{}, false
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.findByEmail(email)
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.findByEmail(newUser.Email); exists {
		return user.User{}, user.ErrUserEmailExists
	}

	now := time.Now()
	newUser.ID = uuid.NewString()
	newUser.CreatedAt = now
	newUser.UpdatedAt = now
	r.users[newUser.ID] = newUser
	return newUser, nil
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.findByEmail(email)
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}

	provider := "google"
	u.OAuthProvider = &provider
	u.OAuthProviderID = &googleID
	u.EmailVerified = true
	u.UpdatedAt = time.Now()
	r.users[u.ID] = u
	return u, nil
}
