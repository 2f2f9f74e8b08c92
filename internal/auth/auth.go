// Package auth implements registration, login, and the single
// persisted session pointer. There is one active user at most, no
// token and no expiry; signing in simply overwrites the pointer.
package auth

import (
	"errors"
	"strings"

	"verdalia/internal/models"
	"verdalia/internal/store"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	usersKey       = "users"
	currentUserKey = "currentUser"

	minUsernameLen = 3
	minPasswordLen = 4
)

// Validation and credential errors. Each call reports the first failing
// rule only; messages are meant to be shown to the user as-is.
var (
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 4 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username is already registered")
	ErrUnknownUser        = errors.New("user does not exist, please register first")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrMissingCredentials = errors.New("please fill in all fields")
)

// Gate manages the user directory and the current session pointer.
type Gate struct {
	store  *store.Store
	logger *zap.Logger
}

// NewGate returns a Gate persisting through st.
func NewGate(st *store.Store, logger *zap.Logger) *Gate {
	return &Gate{store: st, logger: logger}
}

func (g *Gate) loadUsers() []models.User {
	var users []models.User
	g.store.Get(usersKey, &users)
	return users
}

// Register validates the form, appends the new account to the
// directory, and signs it in. On any validation failure the directory
// is left unchanged.
func (g *Gate) Register(username, password, confirm string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLen {
		return nil, ErrUsernameTooShort
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	users := g.loadUsers()
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return nil, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: username, PasswordHash: string(hash)}
	g.store.Set(usersKey, append(users, user))
	g.store.Set(currentUserKey, user)

	g.logger.Info("user registered", zap.String("username", username))
	return &user, nil
}

// Login checks the credentials against the directory. The username
// match is case-insensitive; the password check is not.
func (g *Gate) Login(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	for _, u := range g.loadUsers() {
		if !strings.EqualFold(u.Username, username) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			g.logger.Info("login rejected", zap.String("username", u.Username))
			return nil, ErrIncorrectPassword
		}
		g.store.Set(currentUserKey, u)
		g.logger.Info("login ok", zap.String("username", u.Username))
		return &u, nil
	}
	return nil, ErrUnknownUser
}

// Logout clears the session pointer. Logging out while signed out is a
// no-op.
func (g *Gate) Logout() {
	g.store.Delete(currentUserKey)
}

// CurrentUser returns the signed-in user, or nil.
func (g *Gate) CurrentUser() *models.User {
	var user models.User
	if !g.store.Get(currentUserKey, &user) || user.Username == "" {
		return nil
	}
	return &user
}
