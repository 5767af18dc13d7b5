package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite database and ensures the schema exists. Foreign
// keys are switched on per connection through the DSN so cascades hold no
// matter which pooled connection runs a DELETE.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", withForeignKeys(dsn))
	if err != nil {
		return nil, err
	}
	// Every connection to ":memory:" is a separate database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL
);

-- Drones
CREATE TABLE IF NOT EXISTS drones(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  model TEXT NOT NULL,
  category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
  price INTEGER NOT NULL DEFAULT 0,
  quantity INTEGER NOT NULL CHECK (quantity BETWEEN 0 AND 999),
  image TEXT NOT NULL,
  specifications TEXT NOT NULL DEFAULT '',
  manufacturer TEXT NOT NULL DEFAULT '',
  battery TEXT,
  connection TEXT,
  maximum_take_off_weight TEXT,
  flight_radius INTEGER,
  maximum_flight_time INTEGER,
  cruising_speed INTEGER,
  iso TEXT,
  focal_length INTEGER,
  field_of_view INTEGER,
  size_of_the_image_sensor TEXT
);
CREATE INDEX IF NOT EXISTS idx_drones_category ON drones(category_id);
CREATE INDEX IF NOT EXISTS idx_drones_name     ON drones(LOWER(name));

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL,
  email TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(LOWER(username));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id INTEGER NULL REFERENCES users(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  client_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  drone_id INTEGER NOT NULL REFERENCES drones(id) ON DELETE CASCADE,
  created_at TEXT NOT NULL,
  country TEXT NOT NULL DEFAULT 'Ukraine' CHECK (country IN ('Poland','Ukraine')),
  city TEXT,
  address TEXT,
  number_of_phone INTEGER
);
CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id);
CREATE INDEX IF NOT EXISTS idx_orders_drone  ON orders(drone_id);
`
	_, err := db.Exec(schema)
	return err
}
