package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB(t *testing.T) {
	gormDB, _ := NewMockDB()
	db = gormDB

	assert.Equal(t, db.Name(), "postgres")
}

// Queries issued through the mock handle must hit sqlmock, not a live server.
func TestMockDBInterceptsQueries(t *testing.T) {
	gormDB, mock := NewMockDB()

	mock.ExpectQuery(`SELECT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	var n int
	require.NoError(t, gormDB.Raw("SELECT 1").Scan(&n).Error)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
