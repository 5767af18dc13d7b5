package repos

import (
	"droneshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderSelect = `
  SELECT o.id, o.client_id, o.drone_id, o.created_at, o.country,
         COALESCE(o.city,'') AS city, COALESCE(o.address,'') AS address,
         COALESCE(o.number_of_phone,0) AS number_of_phone,
         d.name AS drone_name, d.price AS drone_price
  FROM orders o
  JOIN drones d ON d.id = o.drone_id`

// Create inserts a new order row. An empty country is stored as the default.
func (r *OrderRepo) Create(o domain.Order) (int64, error) {
	if o.Country == "" {
		o.Country = domain.DefaultCountry
	}
	res, err := r.db.Exec(`
	  INSERT INTO orders
	    (client_id, drone_id, created_at, country, city, address, number_of_phone)
	  VALUES
	    (?,         ?,        ?,          ?,       ?,    ?,       ?)
	`, o.ClientID, o.DroneID, o.CreatedAt, o.Country, o.City, o.Address, o.NumberOfPhone)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *OrderRepo) Get(id int64) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, orderSelect+` WHERE o.id = ?`, id)
	return o, err
}

// ListByClient returns the orders placed by one user, newest first.
func (r *OrderRepo) ListByClient(clientID int64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, orderSelect+`
  WHERE o.client_id = ?
  ORDER BY o.id DESC`, clientID)
	return out, err
}

func (r *OrderRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM orders`)
	return n, err
}

func (r *OrderRepo) CountByClient(clientID int64) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM orders WHERE client_id = ?`, clientID)
	return n, err
}
