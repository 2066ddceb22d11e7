package services

import (
	"database/sql"
	"errors"

	"food-delivery-backend/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

type SubmitReviewRequest struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=500"`
}

// SubmitReview records a one-time review for a delivered order and
// recomputes the restaurant rating as a plain average over all its reviews.
func (s *ReviewService) SubmitReview(userID uint, req *SubmitReviewRequest) (*models.Review, error) {
	var review models.Review

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewError(KindNotFound, "Order not found")
			}
			return err
		}
		if order.UserID != userID {
			return NewError(KindNotFound, "Order not found")
		}
		if order.Status != models.OrderDelivered {
			return NewError(KindInvalidState, "You can review only after delivery")
		}

		var count int64
		if err := tx.Model(&models.Review{}).
			Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewError(KindConflict, "Order already reviewed")
		}

		review = models.Review{
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			Rating:       req.Rating,
			Comment:      req.Comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		// Full aggregate, not incremental. The unique index on order_id
		// backs the duplicate check above.
		var avg sql.NullFloat64
		if err := tx.Model(&models.Review{}).
			Where("restaurant_id = ?", order.RestaurantID).
			Select("AVG(rating)").Scan(&avg).Error; err != nil {
			return err
		}
		rating := 0.0
		if avg.Valid {
			rating = avg.Float64
		}
		return tx.Model(&models.Restaurant{}).
			Where("id = ?", order.RestaurantID).
			Update("rating", rating).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}
