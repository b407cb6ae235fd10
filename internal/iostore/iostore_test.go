package iostore

import (
	"sync"
	"testing"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetManager() {
	Manager = &StoreManagerImpl{}
	initOnce = sync.Once{}  // Reset for test
	closeOnce = sync.Once{} // Reset for test
}

func TestStoreManager(t *testing.T) {
	t.Run("none backend leaves history disabled", func(t *testing.T) {
		resetManager()
		cfg := &contract.Config{HistoryBackend: schema.NoneBackend}

		require.NoError(t, Manager.InitStores(cfg))
		assert.Nil(t, Manager.GetRunStore())
		assert.NoError(t, Manager.CloseStores())
	})

	t.Run("sqlite backend opens a store", func(t *testing.T) {
		resetManager()
		cfg := &contract.Config{
			HistoryBackend:   schema.SQLiteBackend,
			HistoryDBConnect: ":memory:",
		}

		require.NoError(t, Manager.InitStores(cfg))
		assert.NotNil(t, Manager.GetRunStore())
		assert.NoError(t, Manager.CloseStores())
	})

	t.Run("idempotent setup", func(t *testing.T) {
		resetManager()
		cfg := &contract.Config{
			HistoryBackend:   schema.SQLiteBackend,
			HistoryDBConnect: ":memory:",
		}

		// Multiple initializations should be safe (sync.Once)
		require.NoError(t, Manager.InitStores(cfg))
		require.NoError(t, Manager.InitStores(cfg))
		store := Manager.GetRunStore()
		require.NotNil(t, store)

		// Multiple closes should be safe (sync.Once)
		assert.NoError(t, Manager.CloseStores())
		assert.NoError(t, Manager.CloseStores())
	})
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`orgpulse_runs`", quoteTableName(runsTable, schema.MySQLBackend))
	assert.Equal(t, `"orgpulse_runs"`, quoteTableName(runsTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"orgpulse_runs"`, quoteTableName(runsTable, schema.SQLiteBackend))
}
