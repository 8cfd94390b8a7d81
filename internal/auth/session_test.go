package auth

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/syedimran-dev/myblog3/internal/users"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mock := setupMockDB(t)

	u := &users.User{ID: 7, Name: "Writer", Email: "writer@example.com"}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "sessions"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	token, expires, err := StartSession(u)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expires.After(time.Now()))

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	mock.ExpectQuery(`SELECT \* FROM "sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at"}).
			AddRow(claims.ID, u.ID, expires))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(u.ID, u.Name, u.Email, "irrelevant"))

	got, err := UserForToken(token)
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserForTokenRevoked(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mock := setupMockDB(t)

	u := &users.User{ID: 7, Email: "writer@example.com"}
	token, err := GenerateToken(u, "gone-session", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	// session row was deleted at logout, so a signed token no longer resolves
	mock.ExpectQuery(`SELECT \* FROM "sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at"}))

	_, err = UserForToken(token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserForTokenExpiredRow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mock := setupMockDB(t)

	u := &users.User{ID: 7, Email: "writer@example.com"}
	token, err := GenerateToken(u, "stale-session", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at"}).
			AddRow("stale-session", u.ID, time.Now().Add(-time.Minute)))

	// the stale row gets cleaned up on the way out
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sessions"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err = UserForToken(token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeSessionIdempotent(t *testing.T) {
	mock := setupMockDB(t)

	// deleting a session that is already gone is still a success
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "sessions"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(t, RevokeSession("already-gone"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
