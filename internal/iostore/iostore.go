// Package iostore is for reading collected records and persisting dashboards
// and run history.
package iostore

import (
	"fmt"
	"sync"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"
)

// Table names for run history tracking.
const (
	runsTable     = "orgpulse_runs"
	repoRowsTable = "orgpulse_repo_rows"
)

// StoreManagerImpl manages the stores for a command invocation.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	runs         contract.RunStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global store manager from the validated config.
// A "none" history backend leaves run tracking disabled.
func (mgr *StoreManagerImpl) InitStores(cfg *contract.Config) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		if cfg.HistoryBackend == schema.NoneBackend {
			return
		}

		store, err := NewRunStore(cfg.HistoryBackend, cfg.HistoryDBConnect)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize run history store: %w", err)
			return
		}

		mgr.Lock()
		defer mgr.Unlock()
		mgr.runs = store
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// GetRunStore returns the SQL run store, or nil when history is disabled.
func (mgr *StoreManagerImpl) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}

// CloseStores should be called on application shutdown.
func (mgr *StoreManagerImpl) CloseStores() error { // called in main defer
	var err error
	closeOnce.Do(func() {
		mgr.Lock()
		defer mgr.Unlock()
		if mgr.runs != nil {
			err = mgr.runs.Close()
		}
	})
	return err
}

// quoteTableName quotes a table name with the backend's identifier syntax.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}
