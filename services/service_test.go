package services

import (
	"testing"

	"food-delivery-backend/config"
	"food-delivery-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. A single connection keeps
// the memory database alive and serializes writers the way a file-backed
// sqlite would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := &models.User{Name: "Test User", Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createRestaurant(t *testing.T, db *gorm.DB, name string, prices ...float64) (*models.Restaurant, []models.Menu) {
	t.Helper()
	r := &models.Restaurant{Name: name, CuisineType: "Test"}
	require.NoError(t, db.Create(r).Error)

	menus := make([]models.Menu, 0, len(prices))
	for i, p := range prices {
		m := models.Menu{
			RestaurantID:       r.ID,
			ItemName:           name + " item " + string(rune('A'+i)),
			Price:              p,
			AvailabilityStatus: models.Available,
		}
		require.NoError(t, db.Create(&m).Error)
		menus = append(menus, m)
	}
	return r, menus
}

func createDriver(t *testing.T, db *gorm.DB, name string) *models.Driver {
	t.Helper()
	d := &models.Driver{Name: name, VehicleType: "Motorbike", AvailabilityStatus: models.Available}
	require.NoError(t, db.Create(d).Error)
	return d
}

// createDeliveredOrder inserts an order already in its terminal state,
// bypassing the placement flow. Used by review tests.
func createDeliveredOrder(t *testing.T, db *gorm.DB, userID, restaurantID uint) *models.Order {
	t.Helper()
	o := &models.Order{
		UserID:       userID,
		RestaurantID: restaurantID,
		Status:       models.OrderDelivered,
		TotalAmount:  10,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}
