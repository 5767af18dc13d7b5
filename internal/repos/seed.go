package repos

import (
	applog "droneshop/internal/log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserts a demo catalog when the database has none and makes sure the
// demo accounts exist. Safe to run on every start.
func Seed(db *sqlx.DB) error {
	if err := seedCatalogIfEmpty(db); err != nil {
		return err
	}
	return seedUsers(db)
}

func seedCatalogIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	applog.Info(nil, "seed.demo", map[string]any{"what": "categories/drones"})

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`INSERT INTO categories(id,name) VALUES
	  (1,'Recon'),
	  (2,'Agricultural'),
	  (3,'FPV')`); err != nil {
		return err
	}

	if _, err := tx.Exec(`INSERT INTO drones(
	    name, model, category_id, price, quantity, image, specifications, manufacturer,
	    battery, connection, flight_radius, maximum_flight_time, cruising_speed, iso, focal_length, field_of_view)
	  VALUES
	  ('Mavic 3 Enterprise','M3E',1,3900,12,'drone_img/mavic3e.jpg','Mechanical shutter wide camera, 56x hybrid zoom.','DJI',
	   '5000 mAh LiPo','O3 Enterprise',15000,45,21,'100-6400',24,84),
	  ('Matrice 30T','M30T',1,9800,3,'drone_img/m30t.jpg','Thermal + wide + zoom payload, IP55.','DJI',
	   '2x TB30','O3 Enterprise',15000,41,23,'100-25600',24,84),
	  ('Agras T40','T40',2,21000,0,'drone_img/t40.jpg','40 kg spray tank, coaxial twin rotor.','DJI',
	   'DB1560','SDR',2000,18,10,NULL,NULL,NULL),
	  ('Avata 2','AV2',3,999,7,'drone_img/avata2.jpg','Cinewhoop with propeller guards.','DJI',
	   '2150 mAh','O4',13000,23,27,'100-25600',12,155)`); err != nil {
		return err
	}

	return tx.Commit()
}

// seedUsers ensures the demo accounts exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		Username, Email, Hash string
	}
	mk := func(username, email, raw string) (u, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
		return u{Username: username, Email: email, Hash: string(h)}, err
	}

	var users []u
	for _, x := range [][3]string{
		{"alice", "alice@droneshop.test", "Passw0rd!"},
		{"bob", "bob@droneshop.test", "Passw0rd!"},
	} {
		row, err := mk(x[0], x[1], x[2])
		if err != nil {
			return err
		}
		users = append(users, row)
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(username,email,password_hash)
			SELECT ?,?,?
			WHERE NOT EXISTS (SELECT 1 FROM users WHERE LOWER(username)=LOWER(?))
		`, x.Username, x.Email, x.Hash, x.Username); err != nil {
			return err
		}
	}

	return tx.Commit()
}
