package orderrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/delivery"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container, including the optimistic version guard
// that arbitrates concurrent assignment.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	pizza, err := order.NewItem("pizza margherita", 2)
	suite.Require().NoError(err)
	salad, err := order.NewItem("caesar salad", 1)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), []order.Item{pizza, salad})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) newDeliveryJob(agent string) delivery.DeliveryJob {
	job, err := delivery.NewDeliveryJob(agent, time.Now().UTC().Add(30*time.Minute))
	suite.Require().NoError(err)
	return job
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(2), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded)

	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.WithinDuration(testOrder.OrderedAt(), loaded.OrderedAt(), time.Second)
	suite.False(loaded.IsAssigned())
	suite.Nil(loaded.DeliveryAgent())
	suite.Nil(loaded.EstimatedTimeOfDelivery())
	suite.Equal(0, loaded.Version())

	suite.Require().Len(loaded.Items(), 2)
	suite.Equal("pizza margherita", loaded.Items()[0].Product())
	suite.Equal(2, loaded.Items()[0].Quantity())
	suite.Equal("caesar salad", loaded.Items()[1].Product())
	suite.Equal(1, loaded.Items()[1].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsObjectNotFound() {
	ctx := context.Background()

	loaded, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(loaded)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignmentAndBumpsVersion() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Assign(suite.newDeliveryJob("Bruce")))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsAssigned())
	suite.Require().NotNil(loaded.DeliveryAgent())
	suite.Equal("Bruce", *loaded.DeliveryAgent())
	suite.Require().NotNil(loaded.EstimatedTimeOfDelivery())
	suite.Equal(1, loaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two independent loads observe the same unassigned state.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Assign(suite.newDeliveryJob("Bruce")))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Assign(suite.newDeliveryJob("Alfred")))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)

	// The first write stays in place.
	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.DeliveryAgent())
	suite.Equal("Bruce", *loaded.DeliveryAgent())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsObjectNotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConcurrentAssigners_ExactlyOneWins() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	const racers = 8
	agents := []string{"Bruce", "Alfred", "Selina", "Harvey", "Lucius", "Barbara", "Jim", "Dick"}

	var wg sync.WaitGroup
	results := make(chan error, racers)

	for i := range racers {
		wg.Add(1)
		go func(agent string) {
			defer wg.Done()

			loaded, err := suite.repository.Get(ctx, testOrder.ID())
			if err != nil {
				results <- err
				return
			}
			if err = loaded.Assign(suite.newDeliveryJob(agent)); err != nil {
				results <- err
				return
			}
			results <- suite.repository.Update(ctx, loaded)
		}(agents[i])
	}

	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		// Losers either hit the version guard or loaded the order after the
		// winner committed and failed the aggregate's assignment check.
		isExpected := errors.Is(err, errs.ErrVersionIsInvalid) ||
			errors.Is(err, order.ErrOrderAlreadyAssigned)
		suite.True(isExpected, "unexpected race outcome: %v", err)
	}
	suite.Equal(1, successes, "Exactly one concurrent assignment must land")

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsAssigned())
	suite.Equal(1, loaded.Version())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
