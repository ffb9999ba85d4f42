package service

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/pattarin-dev/webboard/internal/domain"
	"github.com/pattarin-dev/webboard/internal/errors"
	"github.com/pattarin-dev/webboard/internal/logger"
)

type AuthService interface {
	Register(creds domain.Credentials) error
	Login(creds domain.Credentials) (string, error)
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	User(username string) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Register hashes the password and persists the account. Duplicate
// usernames come back from storage as 409; there is deliberately no
// existence pre-check.
func (a *Auth) Register(creds domain.Credentials) error {
	// bcrypt.DefaultCost (10) must stay in sync with already stored
	// hashes for verification to keep working.
	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return err
	}

	id, err := a.storage.SaveUser(domain.User{Username: creds.Username, PassHash: string(passHash)})
	if err != nil {
		return err
	}

	logger.Log.Info("user registered", "user_id", id)
	return nil
}

// Login checks credentials and returns a signed access token.
// Unknown username and wrong password produce an identical response
// so callers can't enumerate existing accounts.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	user, err := a.storage.User(creds.Username)
	if err != nil {
		if errors.StatusCode(err) == http.StatusNotFound {
			logger.Log.Debug("login attempt for unknown username")
			return "", invalidCredentials()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return "", invalidCredentials()
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}

	return token, nil
}

func invalidCredentials() error {
	return &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
}
