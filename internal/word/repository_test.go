package word

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("ubiquitous"))
	assert.True(t, IsValid("Ubiquitous"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("don't"))
	assert.False(t, IsValid("the1"))
	assert.False(t, IsValid("two words"))
}

func TestDBRepository_Find(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Word
		wantErr   bool
	}{
		{
			name: "returns registered word",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"word", "frequency_rank", "created_at", "updated_at"}).
					AddRow("ubiquitous", 4213, now, now)
				mock.ExpectQuery("SELECT \\* FROM words WHERE word = \\?").
					WithArgs("ubiquitous").
					WillReturnRows(rows)
			},
			want: &Word{Word: "ubiquitous", FrequencyRank: 4213, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "returns nil for unknown word",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM words WHERE word = \\?").
					WithArgs("ubiquitous").
					WillReturnRows(sqlmock.NewRows([]string{"word", "frequency_rank", "created_at", "updated_at"}))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM words WHERE word = \\?").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "sqlite3"))
			tt.setupMock(mock)

			got, err := repo.Find(context.Background(), "ubiquitous")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_Create(t *testing.T) {
	t.Run("inserts a valid word", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewDBRepository(sqlx.NewDb(db, "sqlite3"))
		mock.ExpectExec("INSERT INTO words").
			WithArgs("ubiquitous", 4213, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = repo.Create(context.Background(), &Word{Word: "ubiquitous", FrequencyRank: 4213})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a non alphabetic word", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewDBRepository(sqlx.NewDb(db, "sqlite3"))
		err = repo.Create(context.Background(), &Word{Word: "nope!"})
		assert.Error(t, err)
	})
}

func TestDBRepository_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDBRepository(sqlx.NewDb(db, "sqlite3"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM words WHERE word = \\?").
		WithArgs("ubiquitous").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), "ubiquitous")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
