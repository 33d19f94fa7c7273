package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	r := &Repository{conn: sqlx.NewDb(db, "sqlmock")}

	testID := uuid.New()
	email, password, name := "test@example.com", "$2a$10$hash", "Test"
	pgErr := &pgconn.PgError{Code: uniqueViolation}

	tests := []struct {
		name        string
		mock        func()
		expectedID  uuid.UUID
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(email, password, name).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testID))
				mock.ExpectCommit()
			},
			expectedID: testID,
		},
		{
			name: "UserAlreadyExists",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(email, password, name).
					WillReturnError(pgErr)
				mock.ExpectRollback()
			},
			expectedErr: repo.ErrAlreadyExists,
		},
		{
			name: "BeginTxError",
			mock: func() {
				mock.ExpectBegin().WillReturnError(errors.New("tx begin error"))
			},
			expectedErr: errors.New("tx begin error"),
		},
		{
			name: "CreateQueryError",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(email, password, name).
					WillReturnError(errors.New("query error"))
				mock.ExpectRollback()
			},
			expectedErr: errors.New("query error"),
		},
		{
			name: "CommitError",
			mock: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(userCreateQ)).
					WithArgs(email, password, name).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testID))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			expectedErr: errors.New("commit error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			id, err := r.CreateUser(context.Background(), email, password, name)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, repo.ErrAlreadyExists) {
					assert.ErrorIs(t, err, repo.ErrAlreadyExists)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetUserByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	r := &Repository{conn: sqlx.NewDb(db, "sqlmock")}

	avatar := "https://cdn.example.com/a.png"
	testUser := &md.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Name:     "Test",
		Password: "$2a$10$hash",
		Avatar:   &avatar,
	}
	cols := []string{"id", "email", "name", "password", "avatar"}

	tests := []struct {
		name        string
		mock        func()
		expected    *md.User
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
					WithArgs(testUser.Email).
					WillReturnRows(
						sqlmock.NewRows(cols).AddRow(
							testUser.ID, testUser.Email, testUser.Name, testUser.Password, avatar,
						),
					)
			},
			expected: testUser,
		},
		{
			name: "NullAvatar",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
					WithArgs(testUser.Email).
					WillReturnRows(
						sqlmock.NewRows(cols).AddRow(
							testUser.ID, testUser.Email, testUser.Name, testUser.Password, nil,
						),
					)
			},
			expected: &md.User{
				ID:       testUser.ID,
				Email:    testUser.Email,
				Name:     testUser.Name,
				Password: testUser.Password,
			},
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
					WithArgs(testUser.Email).
					WillReturnError(sql.ErrNoRows)
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "QueryError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
					WithArgs(testUser.Email).
					WillReturnError(errors.New("query error"))
			},
			expectedErr: errors.New("query error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, err := r.GetUserByEmail(context.Background(), testUser.Email)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateAvatar(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	r := &Repository{conn: sqlx.NewDb(db, "sqlmock")}

	uid := uuid.New()
	avatar := "https://cdn.example.com/a.png"

	tests := []struct {
		name        string
		mock        func()
		expectedErr error
	}{
		{
			name: "Success",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userUpdateAvatarQ)).
					WithArgs(avatar, uid).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "NotFound",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userUpdateAvatarQ)).
					WithArgs(avatar, uid).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "ExecError",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userUpdateAvatarQ)).
					WithArgs(avatar, uid).
					WillReturnError(errors.New("exec error"))
			},
			expectedErr: errors.New("exec error"),
		},
		{
			name: "RowsAffectedError",
			mock: func() {
				mock.ExpectExec(regexp.QuoteMeta(userUpdateAvatarQ)).
					WithArgs(avatar, uid).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("rows error")))
			},
			expectedErr: errors.New("rows error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			err := r.UpdateAvatar(context.Background(), uid, avatar)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBiometrics(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	r := &Repository{conn: sqlx.NewDb(db, "sqlmock")}
	uid := uuid.New()

	tests := []struct {
		name        string
		mock        func()
		expected    bool
		expectedErr error
	}{
		{
			name: "Enabled",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(biometricsGetQ)).
					WithArgs(uid).
					WillReturnRows(sqlmock.NewRows([]string{"enabled"}).AddRow(true))
			},
			expected: true,
		},
		{
			name: "NoRow",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(biometricsGetQ)).
					WithArgs(uid).
					WillReturnError(sql.ErrNoRows)
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "QueryError",
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(biometricsGetQ)).
					WithArgs(uid).
					WillReturnError(errors.New("query error"))
			},
			expectedErr: errors.New("query error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, err := r.GetBiometrics(context.Background(), uid)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.False(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetBiometrics(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	r := &Repository{conn: sqlx.NewDb(db, "sqlmock")}
	uid := uuid.New()

	tests := []struct {
		name        string
		enabled     bool
		mock        func()
		expectedErr error
	}{
		{
			name:    "Enable",
			enabled: true,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(biometricsUpsertQ)).
					WithArgs(uid, true).
					WillReturnRows(sqlmock.NewRows([]string{"enabled"}).AddRow(true))
			},
		},
		{
			name:    "Disable",
			enabled: false,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(biometricsUpsertQ)).
					WithArgs(uid, false).
					WillReturnRows(sqlmock.NewRows([]string{"enabled"}).AddRow(false))
			},
		},
		{
			name:    "UnknownUser",
			enabled: true,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(biometricsUpsertQ)).
					WithArgs(uid, true).
					WillReturnError(&pgconn.PgError{Code: foreignKeyViolation})
			},
			expectedErr: repo.ErrNotFound,
		},
		{
			name:    "QueryError",
			enabled: true,
			mock: func() {
				mock.ExpectQuery(regexp.QuoteMeta(biometricsUpsertQ)).
					WithArgs(uid, true).
					WillReturnError(errors.New("query error"))
			},
			expectedErr: errors.New("query error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mock()

			res, err := r.SetBiometrics(context.Background(), uid, tt.enabled)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.enabled, res)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
