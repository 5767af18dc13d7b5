package domain

import "strconv"

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (c Category) String() string { return c.Name }

type Drone struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	Model          string `db:"model"`
	CategoryID     int64  `db:"category_id"`
	Price          int64  `db:"price"`
	Quantity       int    `db:"quantity"`
	Image          string `db:"image"` // path relative to the media root
	Specifications string `db:"specifications"`
	Manufacturer   string `db:"manufacturer"`

	// Optional technical attributes.
	Battery              *string `db:"battery"`
	Connection           *string `db:"connection"`
	MaximumTakeOffWeight *string `db:"maximum_take_off_weight"`
	FlightRadius         *int64  `db:"flight_radius"`
	MaximumFlightTime    *int64  `db:"maximum_flight_time"`
	CruisingSpeed        *int64  `db:"cruising_speed"`
	ISO                  *string `db:"iso"`
	FocalLength          *int64  `db:"focal_length"`
	FieldOfView          *int64  `db:"field_of_view"`
	SizeOfTheImageSensor *string `db:"size_of_the_image_sensor"`
}

func (d Drone) String() string { return d.Name }

type Country string

const (
	CountryPoland  Country = "Poland"
	CountryUkraine Country = "Ukraine"

	DefaultCountry = CountryUkraine
)

// Countries lists the accepted delivery countries in display order.
var Countries = []Country{CountryPoland, CountryUkraine}

func ParseCountry(s string) (Country, bool) {
	for _, c := range Countries {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// OrderDetails are the customer-supplied parts of an order.
type OrderDetails struct {
	Country       Country
	City          string
	Address       string
	NumberOfPhone int64
}

type Order struct {
	ID            int64   `db:"id"`
	ClientID      int64   `db:"client_id"`
	DroneID       int64   `db:"drone_id"`
	CreatedAt     string  `db:"created_at"`
	Country       Country `db:"country"`
	City          string  `db:"city"`
	Address       string  `db:"address"`
	NumberOfPhone int64   `db:"number_of_phone"`

	// Joined for display.
	DroneName  string `db:"drone_name"`
	DronePrice int64  `db:"drone_price"`
}

func (o Order) String() string {
	if o.DroneName != "" {
		return o.DroneName
	}
	return "order #" + strconv.FormatInt(o.ID, 10)
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty"`
}
