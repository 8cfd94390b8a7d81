package posts

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/syedimran-dev/myblog3/internal/database"
	"github.com/syedimran-dev/myblog3/internal/users"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = originalDB })

	return mock
}

func postColumns() []string {
	return []string{"id", "title", "slug", "subtitle", "date", "body", "image_url", "author_id", "created_at", "updated_at"}
}

func postRow(id uint, title string, authorID uint) *sqlmock.Rows {
	return sqlmock.NewRows(postColumns()).
		AddRow(id, title, "slug", "subtitle", "August 30 2026", "body", "https://example.com/img.png", authorID, time.Now(), time.Now())
}

func TestCreateSetsDateAndSlug(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	author := &users.User{ID: 3}
	p, err := Create(author, "Hello World", "a greeting", "https://example.com/img.png", "body text")
	assert.NoError(t, err)

	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, "Hello World", p.Title)
	assert.Equal(t, "hello-world", p.Slug)
	assert.Equal(t, uint(3), p.AuthorID)
	assert.Equal(t, time.Now().Format(DateLayout), p.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateTitle(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := Create(&users.User{ID: 3}, "Hello World", "sub", "img", "body")
	assert.ErrorIs(t, err, ErrTitleTaken)

	// the INSERT must never run for a duplicate title
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotOwner(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(postRow(5, "Hello World", 2))

	_, err := Update(5, &users.User{ID: 1}, "New Title", "sub", "img", "body")
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(sqlmock.NewRows(postColumns()))

	_, err := Update(99, &users.User{ID: 1}, "New Title", "sub", "img", "body")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesCommentsInSameTransaction(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(postRow(5, "Hello World", 1))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comments"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "posts"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := Delete(5, &users.User{ID: 1})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotOwner(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(postRow(5, "Hello World", 2))

	err := Delete(5, &users.User{ID: 1})
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCommentPostNotFound(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(sqlmock.NewRows(postColumns()))

	_, err := AddComment(99, &users.User{ID: 1}, "nice post")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddComment(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(postRow(5, "Hello World", 2))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	comment, err := AddComment(5, &users.User{ID: 1}, "nice post")
	assert.NoError(t, err)
	assert.Equal(t, uint(11), comment.ID)
	assert.Equal(t, uint(5), comment.PostID)
	assert.Equal(t, uint(1), comment.AuthorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
