package config

import (
	"log"

	"food-delivery-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts the demo catalog: one user, three restaurants with menus and
// two available drivers. Idempotent, keyed on natural identifiers.
func Seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demo := models.User{
		Name:         "Demo User",
		Email:        "demo@svu.com",
		Phone:        "+963999000111",
		Address:      "Damascus, Syria",
		PasswordHash: string(hash),
	}
	if err := db.Where(models.User{Email: demo.Email}).FirstOrCreate(&demo).Error; err != nil {
		return err
	}

	restaurants := []struct {
		r     models.Restaurant
		menus []models.Menu
	}{
		{
			r: models.Restaurant{Name: "Damascus Bites", Address: "Al Hamra Street, Damascus", Phone: "+96311222333", Rating: 4.6, CuisineType: "Syrian"},
			menus: []models.Menu{
				{ItemName: "Shawarma Wrap", Description: "Chicken shawarma with garlic sauce and pickles.", Price: 4.50},
				{ItemName: "Falafel Plate", Description: "Crispy falafel with hummus and salad.", Price: 3.75},
			},
		},
		{
			r: models.Restaurant{Name: "Pizza Corner", Address: "Mezzeh Highway, Damascus", Phone: "+96311444555", Rating: 4.3, CuisineType: "Italian"},
			menus: []models.Menu{
				{ItemName: "Margherita Pizza", Description: "Classic pizza with tomato, mozzarella, basil.", Price: 7.90},
				{ItemName: "Pepperoni Pizza", Description: "Pepperoni, cheese, tomato sauce.", Price: 8.90},
			},
		},
		{
			r: models.Restaurant{Name: "Healthy Bowl", Address: "Abu Rummaneh, Damascus", Phone: "+96311666777", Rating: 4.1, CuisineType: "Healthy"},
			menus: []models.Menu{
				{ItemName: "Chicken Caesar Bowl", Description: "Grilled chicken, romaine, parmesan, light dressing.", Price: 6.20},
			},
		},
	}

	for i := range restaurants {
		r := &restaurants[i].r
		if err := db.Where(models.Restaurant{Name: r.Name}).FirstOrCreate(r).Error; err != nil {
			return err
		}
		for _, m := range restaurants[i].menus {
			m.RestaurantID = r.ID
			m.AvailabilityStatus = models.Available
			if err := db.Where(models.Menu{RestaurantID: r.ID, ItemName: m.ItemName}).FirstOrCreate(&m).Error; err != nil {
				return err
			}
		}
	}

	drivers := []models.Driver{
		{Name: "Ahmad", Phone: "+963933111222", VehicleType: "Motorbike", AvailabilityStatus: models.Available},
		{Name: "Lina", Phone: "+963944333444", VehicleType: "Car", AvailabilityStatus: models.Available},
	}
	for _, d := range drivers {
		if err := db.Where(models.Driver{Name: d.Name}).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}

	log.Println("Seeded demo data. Login with username=demo@svu.com password=password123")
	return nil
}
