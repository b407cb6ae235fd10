package iostore

import (
	"context"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// InitStores implements the StoreManager interface.
func (m *MockStoreManager) InitStores(cfg *contract.Config) error {
	args := m.Called(cfg)
	return args.Error(0)
}

// GetRunStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// CloseStores implements the StoreManager interface.
func (m *MockStoreManager) CloseStores() error {
	args := m.Called()
	return args.Error(0)
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// SaveRun implements the RunStore interface.
func (m *MockRunStore) SaveRun(ctx context.Context, d *schema.Dashboard) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns(ctx context.Context) ([]schema.RunRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]schema.RunRecord)
	return records, args.Error(1)
}

// GetAllRepoRows implements the RunStore interface.
func (m *MockRunStore) GetAllRepoRows(ctx context.Context) ([]schema.StoredRepoRow, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]schema.StoredRepoRow)
	return records, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus(ctx context.Context) (*schema.StoreStatus, error) {
	args := m.Called(ctx)
	status, _ := args.Get(0).(*schema.StoreStatus)
	return status, args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
