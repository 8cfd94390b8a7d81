package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/syedimran-dev/myblog3/internal/database"
	"github.com/syedimran-dev/myblog3/internal/users"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUnknownEmail = errors.New("no account with that email")
	ErrBadPassword  = errors.New("password does not match")
)

// Register creates the user and logs them straight in.
func Register(name, email, password string) (*users.User, string, time.Time, error) {
	taken, err := users.ExistsByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, "", time.Time{}, ErrEmailTaken
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("hash password: %w", err)
	}

	u := users.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		return nil, "", time.Time{}, fmt.Errorf("create user: %w", err)
	}

	token, expires, err := StartSession(&u)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return &u, token, expires, nil
}

func Login(email, password string) (*users.User, string, time.Time, error) {
	u, err := users.FindByEmail(email)
	if err != nil {
		if users.IsNotFound(err) {
			return nil, "", time.Time{}, ErrUnknownEmail
		}
		return nil, "", time.Time{}, fmt.Errorf("query user: %w", err)
	}

	if err := users.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrBadPassword
	}

	token, expires, err := StartSession(u)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return u, token, expires, nil
}
