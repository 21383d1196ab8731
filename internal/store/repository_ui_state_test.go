package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/atharva-again/samvaad/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIStateRepository_Get(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUIStateRepository(newDBFromSQL(db), logger.Nop())

	syncedAt := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{"active_conversation_id", "files_synced_at"}).
		AddRow("c1", syncedAt)

	mock.ExpectQuery(regexp.QuoteMeta(getUIState)).
		WithArgs("u1").
		WillReturnRows(rows)

	state, err := repo.Get(testContext(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", state.ActiveConversationID)
	assert.Equal(t, syncedAt, state.FilesSyncedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUIStateRepository_Get_NoRowReturnsZeroValue(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUIStateRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(getUIState)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"active_conversation_id", "files_synced_at"}))

	state, err := repo.Get(testContext(), "u1")
	require.NoError(t, err)
	assert.Empty(t, state.ActiveConversationID)
	assert.True(t, state.FilesSyncedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUIStateRepository_Get_NullColumns(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUIStateRepository(newDBFromSQL(db), logger.Nop())

	rows := sqlmock.NewRows([]string{"active_conversation_id", "files_synced_at"}).
		AddRow(nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta(getUIState)).
		WithArgs("u1").
		WillReturnRows(rows)

	state, err := repo.Get(testContext(), "u1")
	require.NoError(t, err)
	assert.Empty(t, state.ActiveConversationID)
	assert.True(t, state.FilesSyncedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUIStateRepository_Save(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUIStateRepository(newDBFromSQL(db), logger.Nop())

	syncedAt := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta(upsertUIState)).
		WithArgs("u1", "c1", syncedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(testContext(), "u1", UIState{
		ActiveConversationID: "c1",
		FilesSyncedAt:        syncedAt,
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUIStateRepository_Save_ZeroSyncTimeStoredAsNull(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUIStateRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(upsertUIState)).
		WithArgs("u1", "c1", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(testContext(), "u1", UIState{ActiveConversationID: "c1"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUIStateRepository_PurgeUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUIStateRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteUIState)).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.PurgeUser(testContext(), "u1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
