// Package memory implements the repository contract on in-process maps.
// It is the second storage backend behind the same interfaces as the
// postgres adapter: selected by configuration for tests and local runs,
// never mixed with conditional logic in callers.
//
// RunInTx provides real all-or-nothing semantics by snapshotting the maps
// before the callback and restoring them on error, under one store-wide
// lock. That also serializes concurrent mutations, which stands in for the
// database's row-level locking.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/domain"
)

// Store holds all entity maps. Zero value is not usable; call NewStore.
type Store struct {
	mu sync.Mutex

	companies   map[uuid.UUID]domain.Company
	departments map[uuid.UUID]domain.Department
	users       map[uuid.UUID]domain.User
	memberships map[uuid.UUID][]uuid.UUID // user id -> department ids
	fields      map[uuid.UUID]domain.CustomField
	items       map[uuid.UUID]domain.InventoryItem
	activity    []domain.ActivityLog
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		companies:   make(map[uuid.UUID]domain.Company),
		departments: make(map[uuid.UUID]domain.Department),
		users:       make(map[uuid.UUID]domain.User),
		memberships: make(map[uuid.UUID][]uuid.UUID),
		fields:      make(map[uuid.UUID]domain.CustomField),
		items:       make(map[uuid.UUID]domain.InventoryItem),
	}
}

// Repositories.

// Companies returns the company repository view of the store.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{s: s} }

// Departments returns the department repository view of the store.
func (s *Store) Departments() *DepartmentRepo { return &DepartmentRepo{s: s} }

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// CustomFields returns the custom field repository view of the store.
func (s *Store) CustomFields() *CustomFieldRepo { return &CustomFieldRepo{s: s} }

// Items returns the item repository view of the store.
func (s *Store) Items() *ItemRepo { return &ItemRepo{s: s} }

// Activity returns the activity log repository view of the store.
func (s *Store) Activity() *ActivityRepo { return &ActivityRepo{s: s} }

// unexported context key marking "already inside RunInTx".
type txCtxKey struct{}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(bool)
	return ok
}

// enter acquires the store lock unless the context is already inside a
// transaction (which holds it for the whole callback). Returns the matching
// release func.
func (s *Store) enter(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// RunInTx executes fn atomically against the store. The lock is held for the
// whole callback; on error or panic every map is restored from a snapshot,
// so partial application is never observable. Same contract as the postgres
// TxManager.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()

	defer func() {
		if r := recover(); r != nil {
			s.restore(snap)
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}

	return nil
}

type snapshotState struct {
	companies   map[uuid.UUID]domain.Company
	departments map[uuid.UUID]domain.Department
	users       map[uuid.UUID]domain.User
	memberships map[uuid.UUID][]uuid.UUID
	fields      map[uuid.UUID]domain.CustomField
	items       map[uuid.UUID]domain.InventoryItem
	activity    []domain.ActivityLog
}

// snapshot copies the maps. Entry values are replaced wholesale by the
// repositories, never mutated in place, so a shallow entry copy is enough.
func (s *Store) snapshot() snapshotState {
	return snapshotState{
		companies:   copyMap(s.companies),
		departments: copyMap(s.departments),
		users:       copyMap(s.users),
		memberships: copyMap(s.memberships),
		fields:      copyMap(s.fields),
		items:       copyMap(s.items),
		activity:    append([]domain.ActivityLog(nil), s.activity...),
	}
}

func (s *Store) restore(snap snapshotState) {
	s.companies = snap.companies
	s.departments = snap.departments
	s.users = snap.users
	s.memberships = snap.memberships
	s.fields = snap.fields
	s.items = snap.items
	s.activity = snap.activity
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
