package auth

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/syedimran-dev/myblog3/internal/database"
	"github.com/syedimran-dev/myblog3/internal/users"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// Session rows are the server-side record of issued tokens. Logout deletes
// the row, which makes the token useless even though it is still signed.
type Session struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    uint   `gorm:"not null"`
	ExpiresAt time.Time
}

func sessionTTL() time.Duration {
	hours := 24
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			hours = h
		}
	}
	return time.Duration(hours) * time.Hour
}

// StartSession creates a session row for the user and returns the signed
// token to hand to the client, plus the session expiry for the cookie.
func StartSession(u *users.User) (string, time.Time, error) {
	s := Session{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(sessionTTL()),
	}
	if err := database.DB.Create(&s).Error; err != nil {
		return "", time.Time{}, fmt.Errorf("create session: %w", err)
	}

	token, err := GenerateToken(u, s.ID, s.ExpiresAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, s.ExpiresAt, nil
}

// RevokeSession deletes the session row. Deleting a row that is already gone
// is not an error, so logout stays idempotent.
func RevokeSession(sessionID string) error {
	return database.DB.Delete(&Session{}, "id = ?", sessionID).Error
}

// UserForToken resolves a token to its user: the signature must verify, the
// session row must still exist, and the row must not be expired.
func UserForToken(tokenStr string) (*users.User, error) {
	claims, err := ParseToken(tokenStr)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	var s Session
	if err := database.DB.First(&s, "id = ?", claims.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	if time.Now().After(s.ExpiresAt) {
		_ = RevokeSession(s.ID)
		return nil, ErrSessionNotFound
	}

	u, err := users.FindByID(s.UserID)
	if err != nil {
		if users.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session user: %w", err)
	}
	return u, nil
}
