package orderarchive_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"verdant/internal/adapters/out/postgres/orderarchive"
	"verdant/internal/core/domain/model/cart"
	"verdant/internal/core/domain/model/kernel"
	"verdant/internal/core/domain/model/order"
	"verdant/internal/pkg/errs"
)

// OrderArchiveIntegrationTestSuite exercises the GORM order archive against
// a real PostgreSQL instance.
type OrderArchiveIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	archive   *orderarchive.GormOrderArchive
}

func (suite *OrderArchiveIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderarchive.OrderDTO{}, &orderarchive.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.archive = orderarchive.NewGormOrderArchive(db)
}

func (suite *OrderArchiveIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *OrderArchiveIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderArchiveIntegrationTestSuite) TestAddAndGet_RoundTripsOrderWithLines() {
	ctx := context.Background()
	placed := placedTestOrder(suite.T(), "VD-3001")

	err := suite.archive.Add(ctx, placed)
	suite.Require().NoError(err)

	retrieved, err := suite.archive.Get(ctx, placed.ID)
	suite.Require().NoError(err)

	suite.Equal(placed.ID, retrieved.ID)
	suite.Equal(placed.DispensaryID, retrieved.DispensaryID)
	suite.Equal(placed.Contact, retrieved.Contact)
	suite.Equal(placed.Totals, retrieved.Totals)
	suite.Equal(placed.Status, retrieved.Status)
	suite.Require().Len(retrieved.Items, len(placed.Items))
	suite.Equal(placed.Items[0].Name, retrieved.Items[0].Name)
	suite.Equal(placed.Items[0].UnitPrice, retrieved.Items[0].UnitPrice)

	// the timeline is rebuilt from status and placement time
	suite.Len(retrieved.Timeline, len(placed.Timeline))
}

func (suite *OrderArchiveIntegrationTestSuite) TestAdd_DuplicateIDFails() {
	ctx := context.Background()
	placed := placedTestOrder(suite.T(), "VD-3002")

	err := suite.archive.Add(ctx, placed)
	suite.Require().NoError(err)

	err = suite.archive.Add(ctx, placed)
	suite.Require().Error(err, "archiving the same order id twice should fail")
}

func (suite *OrderArchiveIntegrationTestSuite) TestUpdate_PersistsAdvancedStatus() {
	ctx := context.Background()
	placed := placedTestOrder(suite.T(), "VD-3003")

	err := suite.archive.Add(ctx, placed)
	suite.Require().NoError(err)

	advanced := placed.Advanced()
	err = suite.archive.Update(ctx, advanced)
	suite.Require().NoError(err)

	retrieved, err := suite.archive.Get(ctx, placed.ID)
	suite.Require().NoError(err)
	suite.Equal(order.Enroute, retrieved.Status)
}

func (suite *OrderArchiveIntegrationTestSuite) TestUpdate_MissingOrderFails() {
	ctx := context.Background()
	placed := placedTestOrder(suite.T(), "VD-3004")

	err := suite.archive.Update(ctx, placed)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderArchiveIntegrationTestSuite) TestGet_MissingOrderFails() {
	ctx := context.Background()

	_, err := suite.archive.Get(ctx, "VD-9999")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderArchiveIntegrationTestSuite) TestArchivedIDs_ListsAllOrders() {
	ctx := context.Background()

	ids, err := suite.archive.ArchivedIDs(ctx)
	suite.Require().NoError(err)
	suite.Empty(ids)

	suite.Require().NoError(suite.archive.Add(ctx, placedTestOrder(suite.T(), "VD-3005")))
	suite.Require().NoError(suite.archive.Add(ctx, placedTestOrder(suite.T(), "VD-3006")))

	ids, err = suite.archive.ArchivedIDs(ctx)
	suite.Require().NoError(err)
	suite.ElementsMatch([]string{"VD-3005", "VD-3006"}, ids)
}

// placedTestOrder builds a valid placed order for archive tests.
func placedTestOrder(t *testing.T, id string) order.CustomerOrder {
	t.Helper()

	items := []order.LineSnapshot{
		{
			ProductID: 5,
			Name:      "Midnight Berry Gummies 100mg",
			UnitPrice: kernel.NewMoneyFromDollars(28),
			Quantity:  1,
			LineTotal: kernel.NewMoneyFromDollars(28),
		},
	}
	totals := cart.Totals{
		Subtotal:    kernel.NewMoneyFromCents(2800),
		ServiceFee:  kernel.NewMoneyFromCents(224),
		Tax:         kernel.NewMoneyFromCents(266),
		DeliveryFee: kernel.NewMoneyFromCents(900),
		Total:       kernel.NewMoneyFromCents(4190),
		ItemCount:   1,
	}
	contact := order.Contact{Name: "Dana Ortiz", Phone: "555-0179", Address: "52 Juniper Ln"}

	placed, err := order.NewCustomerOrder(id, "disp-golden",
		contact, items, totals, time.Date(2025, time.June, 14, 15, 4, 0, 0, time.UTC))
	require.NoError(t, err)
	return placed
}

func TestOrderArchiveIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderArchiveIntegrationTestSuite))
}
