package services

import (
	"errors"
	"sync"
	"time"

	"food-delivery-backend/models"

	"gorm.io/gorm"
)

// Synthetic tracking constants. The driver starts at a fixed city-center
// seed and drifts a fixed amount per poll; the ETA counts down from the
// 35-minute estimate and floors at 2.
const (
	trackingSeedLat = 33.5138
	trackingSeedLng = 36.2765
	latStepPerPoll  = 0.0006
	lngStepPerPoll  = 0.0004
	etaStartMinutes = 35
	etaFloorMinutes = 2
)

type trackingState struct {
	Lat  float64
	Lng  float64
	Step int
}

// TrackingService simulates driver movement for an order. State is keyed by
// order id, created lazily on first poll and kept only for the process
// lifetime. The mutex serializes polls so the step counter advances
// monotonically even under concurrent callers.
type TrackingService struct {
	DB *gorm.DB

	mu    sync.Mutex
	state map[uint]*trackingState
}

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{DB: db, state: make(map[uint]*trackingState)}
}

type DriverInfo struct {
	DriverID    uint   `json:"driverId"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicleType"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TrackingInfo struct {
	OrderID        uint                  `json:"orderId"`
	OrderStatus    models.OrderStatus    `json:"orderStatus"`
	DeliveryStatus models.DeliveryStatus `json:"deliveryStatus"`
	Driver         DriverInfo            `json:"driver"`
	DriverLocation Coordinates           `json:"driverLocation"`
	EtaMinutes     int                   `json:"etaMinutes"`
	EstimatedTime  time.Time             `json:"estimatedTime"`
}

// Poll advances the simulated position one step and reports it. Each call
// mutates the per-order state; polling is how the position moves.
func (s *TrackingService) Poll(userID, orderID uint) (*TrackingInfo, error) {
	var order models.Order
	err := s.DB.Preload("Delivery.Driver").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewError(KindNotFound, "Order not found")
	}
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, NewError(KindNotFound, "Order not found")
	}
	if order.Delivery == nil {
		return nil, NewError(KindNotFound, "Delivery not found")
	}

	s.mu.Lock()
	st, ok := s.state[orderID]
	if !ok {
		st = &trackingState{Lat: trackingSeedLat, Lng: trackingSeedLng}
		s.state[orderID] = st
	}
	st.Step++
	st.Lat += latStepPerPoll
	st.Lng += lngStepPerPoll
	lat, lng, step := st.Lat, st.Lng, st.Step
	s.mu.Unlock()

	eta := etaStartMinutes - step*2
	if eta < etaFloorMinutes {
		eta = etaFloorMinutes
	}

	info := &TrackingInfo{
		OrderID:        order.ID,
		OrderStatus:    order.Status,
		DeliveryStatus: order.Delivery.Status,
		DriverLocation: Coordinates{Lat: lat, Lng: lng},
		EtaMinutes:     eta,
		EstimatedTime:  order.Delivery.EstimatedTime,
	}
	if d := order.Delivery.Driver; d != nil {
		info.Driver = DriverInfo{
			DriverID:    d.ID,
			Name:        d.Name,
			Phone:       d.Phone,
			VehicleType: d.VehicleType,
		}
	}
	return info, nil
}
