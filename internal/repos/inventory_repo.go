package repos

import (
	"github.com/jmoiron/sqlx"
)

// InventoryRepo reads stock levels. Stock lives on the drone row.
type InventoryRepo struct{ db *sqlx.DB }

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo { return &InventoryRepo{db: db} }

// Qty returns current stock for a drone.
// If the drone does not exist, it returns sql.ErrNoRows from sqlx.Get.
func (r *InventoryRepo) Qty(droneID int64) (int, error) {
	var qty int
	err := r.db.Get(&qty, `SELECT quantity FROM drones WHERE id = ?`, droneID)
	if err != nil {
		return 0, err
	}
	return qty, nil
}
