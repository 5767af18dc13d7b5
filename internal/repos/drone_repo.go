package repos

import (
	"strings"

	"droneshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type DroneRepo struct{ db *sqlx.DB }

func NewDroneRepo(db *sqlx.DB) *DroneRepo { return &DroneRepo{db: db} }

const droneColumns = `
    id, name, model, category_id, price, quantity, image, specifications, manufacturer,
    battery, connection, maximum_take_off_weight, flight_radius, maximum_flight_time,
    cruising_speed, iso, focal_length, field_of_view, size_of_the_image_sensor`

// List returns every drone in insertion order.
func (r *DroneRepo) List() ([]domain.Drone, error) {
	var out []domain.Drone
	err := r.db.Select(&out, `SELECT`+droneColumns+` FROM drones ORDER BY id`)
	return out, err
}

// ListFiltered narrows the list by category and a case-insensitive match on
// name, model or manufacturer. Zero values disable a filter.
func (r *DroneRepo) ListFiltered(categoryID int64, q string) ([]domain.Drone, error) {
	where := []string{"1 = 1"}
	args := []any{}
	if categoryID > 0 {
		where = append(where, "category_id = ?")
		args = append(args, categoryID)
	}
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(model) LIKE ? OR LOWER(manufacturer) LIKE ?)")
		args = append(args, like, like, like)
	}

	var out []domain.Drone
	err := r.db.Select(&out, `SELECT`+droneColumns+`
  FROM drones
  WHERE `+strings.Join(where, " AND ")+`
  ORDER BY id`, args...)
	return out, err
}

func (r *DroneRepo) Get(id int64) (domain.Drone, error) {
	var d domain.Drone
	err := r.db.Get(&d, `SELECT`+droneColumns+` FROM drones WHERE id = ?`, id)
	return d, err
}

// Create inserts d and returns its id. d.ID is ignored.
func (r *DroneRepo) Create(d domain.Drone) (int64, error) {
	res, err := r.db.NamedExec(`
  INSERT INTO drones(
    name, model, category_id, price, quantity, image, specifications, manufacturer,
    battery, connection, maximum_take_off_weight, flight_radius, maximum_flight_time,
    cruising_speed, iso, focal_length, field_of_view, size_of_the_image_sensor)
  VALUES(
    :name, :model, :category_id, :price, :quantity, :image, :specifications, :manufacturer,
    :battery, :connection, :maximum_take_off_weight, :flight_radius, :maximum_flight_time,
    :cruising_speed, :iso, :focal_length, :field_of_view, :size_of_the_image_sensor)
`, d)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Delete removes the drone; orders placed for it go with it.
func (r *DroneRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM drones WHERE id = ?`, id)
	return err
}

func (r *DroneRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM drones`)
	return n, err
}
