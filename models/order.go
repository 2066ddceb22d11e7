package models

import "time"

// OrderStatus, PaymentStatus and DeliveryStatus are three small
// one-directional machines; the valid transitions live in statemachine.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodPayPal PaymentMethod = "PayPal"
	MethodCash   PaymentMethod = "cash"
)

type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryDelivered DeliveryStatus = "delivered"
)

type Order struct {
	ID           uint        `json:"orderId" gorm:"primaryKey"`
	UserID       uint        `json:"userId" gorm:"not null;index"`
	RestaurantID uint        `json:"restaurantId" gorm:"not null"`
	Restaurant   *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Status       OrderStatus `json:"orderStatus" gorm:"not null;default:'pending'"`
	TotalAmount  float64     `json:"totalAmount"`
	Items        []OrderItem `json:"orderItems,omitempty" gorm:"foreignKey:OrderID"`
	Payment      *Payment    `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
	Delivery     *Delivery   `json:"delivery,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"-"`
}

type OrderItem struct {
	ID       uint    `json:"orderItemId" gorm:"primaryKey"`
	OrderID  uint    `json:"orderId" gorm:"not null;index"`
	MenuID   uint    `json:"menuId" gorm:"not null"`
	Menu     *Menu   `json:"menu,omitempty" gorm:"foreignKey:MenuID"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"` // unit price snapshot at order time
}

type Payment struct {
	ID            uint          `json:"paymentId" gorm:"primaryKey"`
	OrderID       uint          `json:"orderId" gorm:"not null;index"`
	Method        PaymentMethod `json:"paymentMethod" gorm:"not null"`
	Status        PaymentStatus `json:"paymentStatus" gorm:"not null;default:'pending'"`
	TransactionID *string       `json:"transactionId"`
	Amount        float64       `json:"amount"`
	PaidAt        *time.Time    `json:"paidAt"`
}

type Delivery struct {
	ID            uint           `json:"deliveryId" gorm:"primaryKey"`
	OrderID       uint           `json:"orderId" gorm:"not null;index"`
	DriverID      uint           `json:"driverId" gorm:"not null"`
	Driver        *Driver        `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Status        DeliveryStatus `json:"deliveryStatus" gorm:"not null;default:'assigned'"`
	EstimatedTime time.Time      `json:"estimatedTime"`
	ActualTime    *time.Time     `json:"actualTime"`
}
