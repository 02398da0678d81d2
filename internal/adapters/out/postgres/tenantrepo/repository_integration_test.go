package tenantrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/tenantrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TenantRepositoryIntegrationTestSuite provides integration tests for TenantRepository
// using PostgreSQL containers to verify database persistence behavior.
type TenantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tenantrepo.GormTenantRepository
	tracker    *MockAggregateTracker
}

func (suite *TenantRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// Open through lib/pq so the repository's *pq.Error classification is
	// exercised the same way it is in production.
	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&tenantrepo.TenantDTO{}))
}

func (suite *TenantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tenants").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = tenantrepo.NewGormTenantRepository(suite.db, suite.tracker)
}

func (suite *TenantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TenantRepositoryIntegrationTestSuite) createMarketTenant(
	marketID kernel.UUID,
	tenantType tenant.Type,
) *tenant.Tenant {
	t, err := tenant.NewTenant(
		kernel.NewUUID(), "Test Tenant", tenantType, &marketID, true, tenant.Mixed, 20,
	)
	suite.Require().NoError(err)
	return t
}

func (suite *TenantRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrips() {
	ctx := context.Background()

	marketID := kernel.NewUUID()
	original := suite.createMarketTenant(marketID, tenant.Restaurant)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Test Tenant", retrieved.Name())
	suite.Equal(tenant.Restaurant, retrieved.Type())
	suite.True(retrieved.BelongsToMarket(marketID))
	suite.True(retrieved.AllowsMarketCourierFallback())
	suite.Equal(tenant.Mixed, retrieved.ProviderMode())
	suite.Equal(20, retrieved.DefaultPrepTimeMin())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TenantRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()

	original := suite.createMarketTenant(kernel.NewUUID(), tenant.Shop)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	err := suite.repository.Add(ctx, original)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TenantRepositoryIntegrationTestSuite) TestAdd_UnlistedTenant_KeepsNilMarket() {
	ctx := context.Background()

	unlisted, err := tenant.NewTenant(
		kernel.NewUUID(), "Ghost Kitchen", tenant.Restaurant, nil, false, tenant.SelfDelivery, 30,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", unlisted.ID(), unlisted).Once()
	suite.Require().NoError(suite.repository.Add(ctx, unlisted))

	retrieved, err := suite.repository.Get(ctx, unlisted.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.MarketID())
	suite.False(retrieved.AllowsMarketCourierFallback())
}

func (suite *TenantRepositoryIntegrationTestSuite) TestGet_NonExistentTenant_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TenantRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()

	marketID := kernel.NewUUID()
	original := suite.createMarketTenant(marketID, tenant.Shop)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Re-register with fallback opted out.
	updated, err := tenant.RestoreTenant(
		original.ID(), original.Name(), original.Type(), &marketID, false, tenant.SelfDelivery, 5,
	)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", updated.ID(), updated).Once()
	suite.Require().NoError(suite.repository.Update(ctx, updated))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.AllowsMarketCourierFallback())
	suite.Equal(tenant.SelfDelivery, retrieved.ProviderMode())
	suite.Equal(5, retrieved.DefaultPrepTimeMin())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TenantRepositoryIntegrationTestSuite) TestGetAllByMarket_FiltersByMarket() {
	ctx := context.Background()

	marketA := kernel.NewUUID()
	marketB := kernel.NewUUID()

	inMarketA := []*tenant.Tenant{
		suite.createMarketTenant(marketA, tenant.Restaurant),
		suite.createMarketTenant(marketA, tenant.Shop),
	}
	inMarketB := suite.createMarketTenant(marketB, tenant.Service)

	for _, t := range append(inMarketA, inMarketB) {
		suite.tracker.On("TrackAggregate", t.ID(), t).Once()
		suite.Require().NoError(suite.repository.Add(ctx, t))
	}

	tenants, err := suite.repository.GetAllByMarket(ctx, marketA)
	suite.Require().NoError(err)
	suite.Len(tenants, 2)

	for _, t := range tenants {
		suite.True(t.BelongsToMarket(marketA))
	}
	suite.tracker.AssertExpectations(suite.T())
}

func TestTenantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryIntegrationTestSuite))
}
