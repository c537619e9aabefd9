package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() []string {
	return []string{"id", "username", "email", "password", "created_at"}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository()
	userID := uuid.New()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(userID.String(), "alice", "alice@example.com", "hashed", time.Now().UTC())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@example.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail(db, "alice@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	user, err := repo.FindByEmail(db, "nobody@example.com")

	require.NoError(t, err, "a missing row is not an error")
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository()
	userID := uuid.New()

	rows := sqlmock.NewRows(userColumns()).
		AddRow(userID.String(), "alice", "alice@example.com", "hashed", time.Now().UTC())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("alice", 1).
		WillReturnRows(rows)

	user, err := repo.FindByUsername(db, "alice")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
