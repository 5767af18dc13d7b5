package services

import (
	"droneshop/internal/domain"
	"droneshop/internal/repos"
)

const lowStockBelow = 5

type InventoryService struct {
	Stock *repos.InventoryRepo
}

func NewInventoryService(stock *repos.InventoryRepo) *InventoryService {
	return &InventoryService{Stock: stock}
}

// CheckAvailability reports the stock label for a drone. Orders never
// change quantity.
func (s *InventoryService) CheckAvailability(droneID int64) (domain.Availability, error) {
	qty, err := s.Stock.Qty(droneID)
	if err != nil {
		return domain.Availability{}, notFound(err)
	}
	return Availability(qty), nil
}

// Availability converts qty to IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func Availability(qty int) domain.Availability {
	status := "OUT_OF_STOCK"
	switch {
	case qty >= lowStockBelow:
		status = "IN_STOCK"
	case qty > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: qty}
}
