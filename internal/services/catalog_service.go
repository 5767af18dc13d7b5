package services

import (
	"droneshop/internal/domain"
	"droneshop/internal/repos"
)

type CatalogService struct {
	Cats   *repos.CategoryRepo
	Drones *repos.DroneRepo
}

func NewCatalogService(cats *repos.CategoryRepo, drones *repos.DroneRepo) *CatalogService {
	return &CatalogService{Cats: cats, Drones: drones}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) ListDrones() ([]domain.Drone, error) {
	return s.Drones.List()
}

// SearchDrones filters by category and free text; zero values match all.
func (s *CatalogService) SearchDrones(categoryID int64, q string) ([]domain.Drone, error) {
	if categoryID <= 0 && q == "" {
		return s.ListDrones()
	}
	return s.Drones.ListFiltered(categoryID, q)
}

func (s *CatalogService) GetDrone(id int64) (domain.Drone, error) {
	d, err := s.Drones.Get(id)
	return d, notFound(err)
}

func (s *CatalogService) GetCategory(id int64) (domain.Category, error) {
	c, err := s.Cats.Get(id)
	return c, notFound(err)
}
