package models

import "time"

// Review is write-once: at most one per order, never updated or deleted.
type Review struct {
	ID           uint      `json:"reviewId" gorm:"primaryKey"`
	OrderID      uint      `json:"orderId" gorm:"uniqueIndex;not null"`
	UserID       uint      `json:"userId" gorm:"not null"`
	RestaurantID uint      `json:"restaurantId" gorm:"not null;index"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
