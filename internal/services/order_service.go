package services

import (
	"time"

	"droneshop/internal/domain"
	"droneshop/internal/repos"
)

// createdAtLayout is fixed width so stored timestamps sort as text.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

type OrderService struct {
	Orders *repos.OrderRepo

	now func() time.Time
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders, now: time.Now}
}

// Create records an order for clientID against droneID. The client, drone
// and timestamp come from the caller, never from the submitted form. Stock
// is not checked or decremented.
func (s *OrderService) Create(clientID, droneID int64, in domain.OrderDetails) (domain.Order, error) {
	o := domain.Order{
		ClientID:      clientID,
		DroneID:       droneID,
		CreatedAt:     s.now().UTC().Format(createdAtLayout),
		Country:       in.Country,
		City:          in.City,
		Address:       in.Address,
		NumberOfPhone: in.NumberOfPhone,
	}
	if o.Country == "" {
		o.Country = domain.DefaultCountry
	}
	id, err := s.Orders.Create(o)
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = id
	return o, nil
}

func (s *OrderService) ListForClient(clientID int64) ([]domain.Order, error) {
	return s.Orders.ListByClient(clientID)
}
