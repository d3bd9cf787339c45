package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/store"
)

func TestMapNotFound(t *testing.T) {
	require.NoError(t, mapNotFound(nil))
	require.ErrorIs(t, mapNotFound(sql.ErrNoRows), store.ErrNotFound)

	other := errors.New("disk I/O error")
	require.Equal(t, other, mapNotFound(other))
}

func TestMapConstraint(t *testing.T) {
	require.NoError(t, mapConstraint(nil))

	uniq := errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)")
	require.ErrorIs(t, mapConstraint(uniq), store.ErrAlreadyExists)

	other := errors.New("constraint failed: CHECK constraint failed: role (275)")
	require.Equal(t, other, mapConstraint(other))
}

func TestUsersRepo_CreateUserMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u1", "alice", "alice@example.com", "hash", "patient",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"))

	repo := &usersRepo{q: db}
	err = repo.CreateUser(context.Background(), domain.User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         domain.RolePatient,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersRepo_GetUserByUsernameAndRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "username", "email", "password_hash", "role", "created_at", "updated_at",
	}).AddRow("u1", "alice", "alice@example.com", "hash", "patient", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\? AND role = \\?").
		WithArgs("alice", "patient").
		WillReturnRows(rows)

	repo := &usersRepo{q: db}
	user, err := repo.GetUserByUsernameAndRole(context.Background(), "alice", domain.RolePatient)
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, domain.RolePatient, user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersRepo_GetUserByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\?").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := &usersRepo{q: db}
	_, err = repo.GetUserByID(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithTxRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"))
	mock.ExpectRollback()

	s := &Store{db: db}
	err = s.WithTx(context.Background(), func(tx store.Tx) error {
		return tx.Users().CreateUser(context.Background(), domain.User{
			ID: "u1", Username: "alice", Email: "alice@example.com",
			PasswordHash: "hash", Role: domain.RolePatient,
		})
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithTxCommits(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("newhash", sqlmock.AnyArg(), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := &Store{db: db}
	err = s.WithTx(context.Background(), func(tx store.Tx) error {
		return tx.Users().UpdatePasswordHash(context.Background(), "u1", "newhash")
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
