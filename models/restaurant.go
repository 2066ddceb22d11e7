package models

// AvailabilityStatus is shared by menus and drivers
type AvailabilityStatus string

const (
	Available   AvailabilityStatus = "available"
	Unavailable AvailabilityStatus = "unavailable"
)

type Restaurant struct {
	ID          uint    `json:"restaurantId" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Rating      float64 `json:"rating" gorm:"default:0"` // derived: mean of all reviews
	CuisineType string  `json:"cuisineType"`
	Menus       []Menu  `json:"menus,omitempty" gorm:"foreignKey:RestaurantID"`
}

type Menu struct {
	ID                 uint               `json:"menuId" gorm:"primaryKey"`
	RestaurantID       uint               `json:"restaurantId" gorm:"not null;index"`
	ItemName           string             `json:"itemName" gorm:"not null"`
	Description        string             `json:"description"`
	Price              float64            `json:"price" gorm:"not null"`
	ImageURL           string             `json:"imageUrl"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus" gorm:"not null;default:'available'"`
}
