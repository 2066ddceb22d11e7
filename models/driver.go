package models

type Driver struct {
	ID                 uint               `json:"driverId" gorm:"primaryKey"`
	Name               string             `json:"name" gorm:"not null"`
	Phone              string             `json:"phone"`
	VehicleType        string             `json:"vehicleType"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus" gorm:"not null;default:'available'"`
}
