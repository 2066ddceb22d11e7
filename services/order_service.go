package services

import (
	"errors"
	"math"
	"time"

	"food-delivery-backend/models"
	"food-delivery-backend/statemachine"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderItemRequest struct {
	MenuID   uint `json:"menuId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1,max=50"`
}

type PlaceOrderRequest struct {
	RestaurantID  uint                 `json:"restaurantId" binding:"required"`
	Items         []OrderItemRequest   `json:"items" binding:"required,min=1,dive"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=card PayPal cash"`
	Address       string               `json:"address" binding:"required,min=5"`
}

// PlaceOrder creates the full order unit: order, item snapshots, pending
// payment and driver-assigned delivery. Everything runs in one transaction
// so a failure leaves no partial order and no stuck driver.
func (s *OrderService) PlaceOrder(userID uint, req *PlaceOrderRequest) (*models.Order, error) {
	var orderID uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, req.RestaurantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewError(KindNotFound, "Restaurant not found")
			}
			return err
		}

		// Last order's address wins on the user profile.
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("address", req.Address).Error; err != nil {
			return err
		}

		menuIDs := make([]uint, 0, len(req.Items))
		for _, it := range req.Items {
			menuIDs = append(menuIDs, it.MenuID)
		}

		var menus []models.Menu
		if err := tx.Where("id IN ? AND restaurant_id = ?", menuIDs, req.RestaurantID).
			Find(&menus).Error; err != nil {
			return err
		}
		if len(menus) != len(menuIDs) {
			return NewError(KindInvalidInput, "One or more menu items not found for this restaurant")
		}
		menuByID := make(map[uint]models.Menu, len(menus))
		for _, m := range menus {
			menuByID[m.ID] = m
		}

		var total float64
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			menu := menuByID[it.MenuID]
			total += menu.Price * float64(it.Quantity)
			items = append(items, models.OrderItem{
				MenuID:   menu.ID,
				Quantity: it.Quantity,
				Price:    menu.Price, // snapshot, menu price changes must not touch past orders
			})
		}
		total = round2(total)

		driver, err := claimDriver(tx)
		if err != nil {
			return err
		}

		now := time.Now()
		order := models.Order{
			UserID:       userID,
			RestaurantID: req.RestaurantID,
			Status:       models.OrderPending,
			TotalAmount:  total,
			Items:        items,
			Payment: &models.Payment{
				Method: req.PaymentMethod,
				Status: models.PaymentPending,
				Amount: total,
			},
			Delivery: &models.Delivery{
				DriverID:      driver.ID,
				Status:        models.DeliveryAssigned,
				EstimatedTime: now.Add(35 * time.Minute),
			},
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadOrderGraph(orderID)
}

// claimDriver picks the lowest-id available driver and flips it to
// unavailable with a guarded update. RowsAffected tells us whether the
// claim won; a lost race just tries the next candidate.
func claimDriver(tx *gorm.DB) (*models.Driver, error) {
	for {
		var driver models.Driver
		err := tx.Where("availability_status = ?", models.Available).
			Order("id asc").First(&driver).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindServiceUnavailable, "No drivers available right now")
		}
		if err != nil {
			return nil, err
		}

		res := tx.Model(&models.Driver{}).
			Where("id = ? AND availability_status = ?", driver.ID, models.Available).
			Update("availability_status", models.Unavailable)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			driver.AvailabilityStatus = models.Unavailable
			return &driver, nil
		}
	}
}

// GetOrder returns the full order graph. A non-owned order is reported
// exactly like a missing one.
func (s *OrderService) GetOrder(userID, orderID uint) (*models.Order, error) {
	order, err := s.loadOrderGraph(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, NewError(KindNotFound, "Order not found")
	}
	return order, nil
}

func (s *OrderService) loadOrderGraph(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.
		Preload("Items.Menu").
		Preload("Payment").
		Preload("Delivery.Driver").
		Preload("Restaurant").
		First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewError(KindNotFound, "Order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// PayOrder marks the pending payment paid and confirms the order. The
// payment update is guarded on status, so a second call is a no-op: no new
// transaction id, no error.
func (s *OrderService) PayOrder(userID, orderID uint) (*models.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewError(KindNotFound, "Order not found")
			}
			return err
		}
		if order.UserID != userID {
			return NewError(KindNotFound, "Order not found")
		}

		now := time.Now()
		txID := "TX-" + uuid.NewString()
		res := tx.Model(&models.Payment{}).
			Where("order_id = ? AND status = ?", orderID, models.PaymentPending).
			Updates(map[string]interface{}{
				"status":         models.PaymentPaid,
				"transaction_id": txID,
				"paid_at":        now,
			})
		if res.Error != nil {
			return res.Error
		}

		if statemachine.CanOrderTransition(order.Status, models.OrderConfirmed) == nil {
			if err := tx.Model(&order).Update("status", models.OrderConfirmed).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.loadOrderGraph(orderID)
}

// MarkDelivered completes the delivery, the order and releases the driver
// in one transaction. An order without a delivery record is reported as
// missing. Repeat calls find the delivery already terminal and change
// nothing.
func (s *OrderService) MarkDelivered(userID, orderID uint) (*models.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Delivery").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewError(KindNotFound, "Order not found")
			}
			return err
		}
		if order.UserID != userID {
			return NewError(KindNotFound, "Order not found")
		}
		if order.Delivery == nil {
			return NewError(KindNotFound, "Delivery not found")
		}

		now := time.Now()
		res := tx.Model(&models.Delivery{}).
			Where("order_id = ? AND status = ?", orderID, models.DeliveryAssigned).
			Updates(map[string]interface{}{
				"status":      models.DeliveryDelivered,
				"actual_time": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already delivered; leave the driver alone.
			return nil
		}

		if err := tx.Model(&order).Update("status", models.OrderDelivered).Error; err != nil {
			return err
		}
		return tx.Model(&models.Driver{}).
			Where("id = ?", order.Delivery.DriverID).
			Update("availability_status", models.Available).Error
	})
	if err != nil {
		return nil, err
	}

	return s.loadOrderGraph(orderID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
