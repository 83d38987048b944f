package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Loyalty: config.DefaultLoyaltyConfig(),
		Report:  config.DefaultReportConfig(),
	}
}

// fakeStore is an in-memory ledger. Transactions run concurrently: only
// LockCustomer serializes them, through a per-customer lock held until
// Execute returns. A failed transaction undoes just its own writes.
type fakeStore struct {
	mu    sync.Mutex
	rowMu sync.Mutex
	rows  map[uuid.UUID]*sync.Mutex

	customers    map[uuid.UUID]*entity.Customer
	stampEvents  []*entity.StampEvent
	rewardEvents []*entity.RewardEvent
	activities   []*entity.Activity
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers: make(map[uuid.UUID]*entity.Customer),
		rows:      make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *fakeStore) addCustomer(c *entity.Customer) *entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *c
	s.customers[c.ID] = &copied

	return c
}

func (s *fakeStore) addStamps(c *entity.Customer, stamps int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stampEvents = append(s.stampEvents, &entity.StampEvent{
		ID:         uuid.New(),
		CustomerID: c.ID,
		TenantID:   c.TenantID,
		Stamps:     stamps,
	})
}

func (s *fakeStore) rewardCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.rewardEvents)
}

func (s *fakeStore) activitiesFor(customerID uuid.UUID) []*entity.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.Activity
	for _, a := range s.activities {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}

	return out
}

func (s *fakeStore) balance(customerID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalsLocked(customerID).Balance()
}

func (s *fakeStore) totalsLocked(customerID uuid.UUID) repository.LedgerTotals {
	var totals repository.LedgerTotals
	for _, e := range s.stampEvents {
		if e.CustomerID == customerID {
			totals.StampsEarned += e.Stamps
		}
	}
	for _, e := range s.rewardEvents {
		if e.CustomerID == customerID {
			totals.StampsConsumed += e.StampsConsumed
			totals.RewardCount++
		}
	}

	return totals
}

// Execute implements repository.TransactionManager.
func (s *fakeStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tx := &fakeTx{fakeStore: s}
	defer tx.release()

	if err := fn(tx); err != nil {
		tx.rollback()

		return err
	}

	return nil
}

func (s *fakeStore) NewCustomerRepository() repository.CustomerRepository { return s }
func (s *fakeStore) NewLedgerRepository() repository.LedgerRepository     { return s }
func (s *fakeStore) NewActivityRepository() repository.ActivityRepository { return s }

func (s *fakeStore) rowLock(id uuid.UUID) *sync.Mutex {
	s.rowMu.Lock()
	defer s.rowMu.Unlock()

	l, ok := s.rows[id]
	if !ok {
		l = &sync.Mutex{}
		s.rows[id] = l
	}

	return l
}

// fakeTx is one transaction over the store. Reads see committed state plus
// the transaction's own writes, like READ COMMITTED without isolation
// between open transactions.
type fakeTx struct {
	*fakeStore

	held []*sync.Mutex
	undo []func()
}

func (tx *fakeTx) NewCustomerRepository() repository.CustomerRepository { return tx }
func (tx *fakeTx) NewLedgerRepository() repository.LedgerRepository     { return tx }
func (tx *fakeTx) NewActivityRepository() repository.ActivityRepository { return tx }

func (tx *fakeTx) release() {
	for i := len(tx.held) - 1; i >= 0; i-- {
		tx.held[i].Unlock()
	}
	tx.held = nil
}

func (tx *fakeTx) rollback() {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
}

// LockCustomer blocks until no other transaction holds the customer's row.
func (tx *fakeTx) LockCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	l := tx.rowLock(id)
	l.Lock()
	tx.held = append(tx.held, l)

	return tx.FindCustomerByID(ctx, id)
}

// GetTotals yields after reading so that two unlocked transactions both act
// on the same stale balance.
func (tx *fakeTx) GetTotals(ctx context.Context, customerID uuid.UUID) (repository.LedgerTotals, error) {
	totals, err := tx.fakeStore.GetTotals(ctx, customerID)
	time.Sleep(2 * time.Millisecond)

	return totals, err
}

func (tx *fakeTx) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	if err := tx.fakeStore.CreateCustomer(ctx, customer); err != nil {
		return err
	}
	tx.undo = append(tx.undo, func() { delete(tx.customers, customer.ID) })

	return nil
}

func (tx *fakeTx) UpdateCustomerStatus(ctx context.Context, id uuid.UUID, status entity.CustomerStatus) error {
	before, err := tx.FindCustomerByID(ctx, id)
	if err != nil {
		return err
	}
	if err := tx.fakeStore.UpdateCustomerStatus(ctx, id, status); err != nil {
		return err
	}
	tx.undo = append(tx.undo, func() {
		if c, ok := tx.customers[id]; ok {
			c.Status = before.Status
		}
	})

	return nil
}

func (tx *fakeTx) CreateStampEvent(ctx context.Context, event *entity.StampEvent) error {
	if err := tx.fakeStore.CreateStampEvent(ctx, event); err != nil {
		return err
	}
	tx.undo = append(tx.undo, func() {
		tx.stampEvents = slices.DeleteFunc(tx.stampEvents, func(e *entity.StampEvent) bool { return e == event })
	})

	return nil
}

func (tx *fakeTx) CreateRewardEvent(ctx context.Context, event *entity.RewardEvent) error {
	if err := tx.fakeStore.CreateRewardEvent(ctx, event); err != nil {
		return err
	}
	tx.undo = append(tx.undo, func() {
		tx.rewardEvents = slices.DeleteFunc(tx.rewardEvents, func(e *entity.RewardEvent) bool { return e == event })
	})

	return nil
}

func (tx *fakeTx) CreateActivity(ctx context.Context, activity *entity.Activity) error {
	if err := tx.fakeStore.CreateActivity(ctx, activity); err != nil {
		return err
	}
	tx.undo = append(tx.undo, func() {
		tx.activities = slices.DeleteFunc(tx.activities, func(a *entity.Activity) bool { return a == activity })
	})

	return nil
}

func (s *fakeStore) CreateCustomer(_ context.Context, customer *entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.QRCode == customer.QRCode {
			return repository.ErrDuplicateQRCode
		}
	}
	copied := *customer
	s.customers[customer.ID] = &copied

	return nil
}

func (s *fakeStore) FindCustomerByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	copied := *c

	return &copied, nil
}

func (s *fakeStore) FindCustomerByQRCode(_ context.Context, tenantID uuid.UUID, qrCode string) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.TenantID == tenantID && c.QRCode == qrCode {
			copied := *c

			return &copied, nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (s *fakeStore) FindCustomers(_ context.Context, tenantID uuid.UUID, query repository.CustomerQuery, limit int) ([]*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.Customer
	for _, c := range s.customers {
		if c.TenantID != tenantID {
			continue
		}
		match := (query.QRCode != "" && c.QRCode == query.QRCode) ||
			(query.Phone != "" && c.Phone != nil && *c.Phone == query.Phone) ||
			(query.Email != "" && c.Email != nil && strings.EqualFold(*c.Email, query.Email))
		if match {
			copied := *c
			out = append(out, &copied)
		}
		if len(out) == limit {
			break
		}
	}

	return out, nil
}

func (s *fakeStore) LockCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return s.FindCustomerByID(ctx, id)
}

func (s *fakeStore) UpdateCustomerStatus(_ context.Context, id uuid.UUID, status entity.CustomerStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return repository.ErrCustomerNotFound
	}
	c.Status = status

	return nil
}

func (s *fakeStore) CreateStampEvent(_ context.Context, event *entity.StampEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stampEvents = append(s.stampEvents, event)

	return nil
}

func (s *fakeStore) CreateRewardEvent(_ context.Context, event *entity.RewardEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rewardEvents = append(s.rewardEvents, event)

	return nil
}

func (s *fakeStore) GetTotals(_ context.Context, customerID uuid.UUID) (repository.LedgerTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalsLocked(customerID), nil
}

func (s *fakeStore) GetTotalsByCustomers(_ context.Context, customerIDs []uuid.UUID) (map[uuid.UUID]repository.LedgerTotals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[uuid.UUID]repository.LedgerTotals, len(customerIDs))
	for _, id := range customerIDs {
		out[id] = s.totalsLocked(id)
	}

	return out, nil
}

func (s *fakeStore) ListStampEvents(_ context.Context, customerID uuid.UUID, limit int) ([]*entity.StampEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.StampEvent
	for i := len(s.stampEvents) - 1; i >= 0 && len(out) < limit; i-- {
		if s.stampEvents[i].CustomerID == customerID {
			out = append(out, s.stampEvents[i])
		}
	}

	return out, nil
}

func (s *fakeStore) ListRewardEvents(_ context.Context, customerID uuid.UUID, limit int) ([]*entity.RewardEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.RewardEvent
	for i := len(s.rewardEvents) - 1; i >= 0 && len(out) < limit; i-- {
		if s.rewardEvents[i].CustomerID == customerID {
			out = append(out, s.rewardEvents[i])
		}
	}

	return out, nil
}

func (s *fakeStore) CreateActivity(_ context.Context, activity *entity.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = append(s.activities, activity)

	return nil
}

// fixture is a tenant with one active location and an active customer.
type fixture struct {
	tenantID   uuid.UUID
	locationID uuid.UUID
	actorID    uuid.UUID
}

func newFixture() fixture {
	return fixture{tenantID: uuid.New(), locationID: uuid.New(), actorID: uuid.New()}
}

func (f fixture) location() *entity.Location {
	return &entity.Location{ID: f.locationID, TenantID: f.tenantID, Name: "Main St", Status: entity.RecordStatusActive}
}

func (f fixture) tenant() *entity.Tenant {
	return &entity.Tenant{ID: f.tenantID, Name: "Bean There", Status: entity.RecordStatusActive}
}

func (f fixture) staff(flags entity.CapabilityFlags) entity.PermissionSet {
	return entity.PermissionSet{
		Kind:       entity.PermissionLocationGrant,
		TenantID:   f.tenantID,
		LocationID: f.locationID,
		Role:       entity.StaffRoleStaff,
		Flags:      flags,
	}
}

func (f fixture) customer(name, phone string) *entity.Customer {
	email := strings.ToLower(name) + "@example.com"

	return &entity.Customer{
		ID:       uuid.New(),
		TenantID: f.tenantID,
		Name:     name,
		Email:    &email,
		Phone:    &phone,
		QRCode:   "qr-" + strings.ToLower(name),
		Status:   entity.CustomerStatusActive,
	}
}

func (f fixture) settings(stampsForReward, maxStampsPerVisit int) *entity.LoyaltySettings {
	return &entity.LoyaltySettings{
		LocationID:        f.locationID,
		StampsForReward:   stampsForReward,
		MaxStampsPerVisit: maxStampsPerVisit,
		RewardValue:       4.5,
	}
}

func ptr[T any](v T) *T {
	return &v
}
