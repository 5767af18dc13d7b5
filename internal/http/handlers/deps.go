package handlers

import (
	"path/filepath"

	"droneshop/internal/config"
	"droneshop/internal/repos"
	"droneshop/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth *services.AuthService

	CategoryHandler  *CategoryHandler
	DroneHandler     *DroneHandler
	InventoryHandler *InventoryHandler
	OrderHandler     *OrderHandler
	AuthHandler      *AuthHandler
	MediaHandler     *MediaHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	droneRepo := repos.NewDroneRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, droneRepo)
	invSvc := services.NewInventoryService(repos.NewInventoryRepo(db))
	orderSvc := services.NewOrderService(orderRepo)
	authSvc := &services.AuthService{Users: userRepo}
	cookies := Cookies{Secure: cfg.CookieSecure}

	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}

	return &Deps{
		Auth:             authSvc,
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc},
		DroneHandler:     &DroneHandler{Catalog: catalogSvc, Orders: orderSvc},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		OrderHandler:     &OrderHandler{Orders: orderSvc},
		AuthHandler:      &AuthHandler{Auth: authSvc, Cookies: cookies},
		MediaHandler:     &MediaHandler{Dir: mediaDir},
	}
}
