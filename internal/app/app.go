// Package app wires configuration, storage, services, and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/akulikova/stockroom-backend/internal/adapter/memory"
	postgresadapter "github.com/akulikova/stockroom-backend/internal/adapter/postgres"
	activityrepo "github.com/akulikova/stockroom-backend/internal/adapter/postgres/activity"
	companyrepo "github.com/akulikova/stockroom-backend/internal/adapter/postgres/company"
	customfieldrepo "github.com/akulikova/stockroom-backend/internal/adapter/postgres/customfield"
	departmentrepo "github.com/akulikova/stockroom-backend/internal/adapter/postgres/department"
	itemrepo "github.com/akulikova/stockroom-backend/internal/adapter/postgres/item"
	userrepo "github.com/akulikova/stockroom-backend/internal/adapter/postgres/user"
	"github.com/akulikova/stockroom-backend/internal/auth"
	"github.com/akulikova/stockroom-backend/internal/config"
	"github.com/akulikova/stockroom-backend/internal/domain"
	"github.com/akulikova/stockroom-backend/internal/metrics"
	"github.com/akulikova/stockroom-backend/internal/service/account"
	"github.com/akulikova/stockroom-backend/internal/service/customfield"
	"github.com/akulikova/stockroom-backend/internal/service/department"
	"github.com/akulikova/stockroom-backend/internal/service/inventory"
	"github.com/akulikova/stockroom-backend/internal/service/reporting"
	"github.com/akulikova/stockroom-backend/internal/service/staff"
	"github.com/akulikova/stockroom-backend/internal/transport/middleware"
	"github.com/akulikova/stockroom-backend/internal/transport/rest"
)

// Repository interfaces shared by both storage backends. Each service keeps
// its own narrower consumer-side view; these unions exist only so the
// driver switch can hand one set of repos to all services.
type (
	companyRepository interface {
		Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
		GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
		NextAssetNumber(ctx context.Context, companyID uuid.UUID) (int64, string, error)
		UpdatePattern(ctx context.Context, companyID uuid.UUID, pattern string) error
	}

	departmentRepository interface {
		Create(ctx context.Context, d *domain.Department) (*domain.Department, error)
		GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
		ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Department, error)
		ListAll(ctx context.Context) ([]*domain.Department, error)
		UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Department, error)
		AdjustCounters(ctx context.Context, id uuid.UUID, deltaItems, deltaCapacity int) error
		SetCounters(ctx context.Context, id uuid.UUID, itemCount, capacityUsed int) (*domain.Department, error)
		CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error)
	}

	userRepository interface {
		Create(ctx context.Context, u *domain.User) (*domain.User, error)
		GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
		GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*domain.User, error)
		ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.User, error)
		Memberships(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
		AddMembership(ctx context.Context, userID, departmentID uuid.UUID) error
		RemoveMembership(ctx context.Context, userID, departmentID uuid.UUID) error
	}

	itemRepository interface {
		Create(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error)
		GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
		Update(ctx context.Context, it *domain.InventoryItem) (*domain.InventoryItem, error)
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, companyID uuid.UUID, filter domain.ItemFilter) ([]*domain.InventoryItem, error)
		CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error)
		CountCreatedSince(ctx context.Context, companyID uuid.UUID, since time.Time) (int, error)
		CountByStatus(ctx context.Context, companyID uuid.UUID, status domain.ItemStatus) (int, error)
		CountByDepartment(ctx context.Context, departmentID uuid.UUID) (int, error)
	}

	customFieldRepository interface {
		Create(ctx context.Context, f *domain.CustomField) (*domain.CustomField, error)
		GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomField, error)
		ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.CustomField, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	activityRepository interface {
		Create(ctx context.Context, entry domain.ActivityLog) (domain.ActivityLog, error)
		ListByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.ActivityLog, error)
	}

	txManager interface {
		RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	}

	pinger interface {
		Ping(ctx context.Context) error
	}
)

// storage is the backend-independent bundle handed to the service layer.
type storage struct {
	companies    companyRepository
	departments  departmentRepository
	users        userRepository
	items        itemRepository
	customFields customFieldRepository
	activity     activityRepository
	tx           txManager
	pinger       pinger
	close        func()
}

// noopPinger satisfies the readiness probe for the memory backend.
type noopPinger struct{}

func (noopPinger) Ping(context.Context) error { return nil }

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgresadapter.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return &storage{
			companies:    companyrepo.New(pool),
			departments:  departmentrepo.New(pool),
			users:        userrepo.New(pool),
			items:        itemrepo.New(pool),
			customFields: customfieldrepo.New(pool),
			activity:     activityrepo.New(pool),
			tx:           postgresadapter.NewTxManager(pool),
			pinger:       pool,
			close:        pool.Close,
		}, nil
	case config.DriverMemory:
		store := memory.NewStore()
		return &storage{
			companies:    store.Companies(),
			departments:  store.Departments(),
			users:        store.Users(),
			items:        store.Items(),
			customFields: store.CustomFields(),
			activity:     store.Activity(),
			tx:           store,
			pinger:       noopPinger{},
			close:        func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Run is the application entry point. It loads configuration, opens the
// storage backend, wires services and the HTTP server, and blocks until the
// context is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.close()

	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	accountSvc := account.NewService(logger, store.companies, store.departments, store.users, store.tx, hasher, tokens, cfg.Inventory)
	departmentSvc := department.NewService(logger, store.departments, store.items, store.tx, cfg.Inventory)
	inventorySvc := inventory.NewService(logger, store.companies, store.departments, store.items, store.users, store.activity, store.tx, cfg.Inventory)
	reportingSvc := reporting.NewService(logger, store.activity, store.items, store.departments, cfg.Inventory)
	customFieldSvc := customfield.NewService(logger, store.customFields, store.departments)
	staffSvc := staff.NewService(logger, store.users, store.departments)

	m := metrics.New()
	m.Register(metrics.NewCapacityCollector(store.departments, logger))

	router := rest.NewRouter(rest.Handlers{
		Account:     rest.NewAccountHandler(accountSvc, logger),
		Department:  rest.NewDepartmentHandler(departmentSvc, logger),
		Item:        rest.NewItemHandler(inventorySvc, logger),
		CustomField: rest.NewCustomFieldHandler(customFieldSvc, logger),
		Staff:       rest.NewStaffHandler(staffSvc, logger),
		Reporting:   rest.NewReportingHandler(reportingSvc, logger),
		Health:      rest.NewHealthHandler(store.pinger, BuildVersion()),
		Metrics:     m.Handler(),
	})

	chain := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		m.HTTPMiddleware(),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		rl := middleware.NewRateLimiter(5 * time.Minute)
		defer rl.Stop()
		chain = append(chain, rl.Limit(cfg.Server.RateLimitPerMinute))
	}
	chain = append(chain, middleware.Auth(tokens))

	handler := middleware.Chain(chain...)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
