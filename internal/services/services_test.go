package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"droneshop/internal/domain"
	"droneshop/internal/repos"
	"droneshop/internal/validate"
)

func memdb(t *testing.T) (*sqlx.DB, int64) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	catID, err := repos.NewCategoryRepo(db).Create("Recon")
	if err != nil {
		t.Fatal(err)
	}
	droneID, err := repos.NewDroneRepo(db).Create(domain.Drone{
		Name: "DJI-Test", Model: "X1", CategoryID: catID, Price: 1000, Quantity: 1, Image: "t.gif",
	})
	if err != nil {
		t.Fatal(err)
	}
	return db, droneID
}

func TestOrderService_CreateStampsServerFields(t *testing.T) {
	db, droneID := memdb(t)
	users := repos.NewUserRepo(db)
	uid, _ := users.Create("alice", "", "x")

	svc := NewOrderService(repos.NewOrderRepo(db))
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	o, err := svc.Create(uid, droneID, domain.OrderDetails{City: "Kyiv", Address: "Main st", NumberOfPhone: 123456789})
	if err != nil {
		t.Fatal(err)
	}
	if o.ID == 0 || o.ClientID != uid || o.DroneID != droneID {
		t.Fatalf("unexpected order %+v", o)
	}
	if o.Country != domain.CountryUkraine {
		t.Fatalf("country = %q", o.Country)
	}
	if o.CreatedAt != "2024-05-01T12:00:00.000000000Z" {
		t.Fatalf("created_at = %q", o.CreatedAt)
	}

	// quantity is left alone
	d, _ := repos.NewDroneRepo(db).Get(droneID)
	if d.Quantity != 1 {
		t.Fatalf("quantity changed to %d", d.Quantity)
	}

	list, err := svc.ListForClient(uid)
	if err != nil || len(list) != 1 || list[0].DroneName != "DJI-Test" {
		t.Fatalf("ListForClient = %+v, %v", list, err)
	}
}

func TestOrderService_HistoryNewestFirstWithinOneSecond(t *testing.T) {
	db, droneID := memdb(t)
	uid, _ := repos.NewUserRepo(db).Create("alice", "", "x")
	svc := NewOrderService(repos.NewOrderRepo(db))

	stamps := []time.Time{
		time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC),
		time.Date(2024, 5, 1, 12, 0, 5, 500_000_000, time.UTC),
	}
	var ids []int64
	for _, ts := range stamps {
		svc.now = func() time.Time { return ts }
		o, err := svc.Create(uid, droneID, domain.OrderDetails{City: "Kyiv", Address: "Main st", NumberOfPhone: 1})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, o.ID)
	}

	list, err := svc.ListForClient(uid)
	if err != nil || len(list) != 2 {
		t.Fatalf("ListForClient = %+v, %v", list, err)
	}
	if list[0].ID != ids[1] || list[1].ID != ids[0] {
		t.Fatalf("want newest first: got %d, %d", list[0].ID, list[1].ID)
	}
	if list[0].CreatedAt <= list[1].CreatedAt {
		t.Fatalf("stamps should sort as text: %q vs %q", list[0].CreatedAt, list[1].CreatedAt)
	}
}

func TestOrderService_BrokenReferenceSurfaces(t *testing.T) {
	db, _ := memdb(t)
	svc := NewOrderService(repos.NewOrderRepo(db))
	if _, err := svc.Create(42, 4242, domain.OrderDetails{}); err == nil {
		t.Fatal("expected storage error for missing references")
	}
}

func TestCatalogService_GetDroneNotFound(t *testing.T) {
	db, droneID := memdb(t)
	svc := NewCatalogService(repos.NewCategoryRepo(db), repos.NewDroneRepo(db))

	if d, err := svc.GetDrone(droneID); err != nil || d.Name != "DJI-Test" {
		t.Fatalf("GetDrone = %+v, %v", d, err)
	}
	if _, err := svc.GetDrone(droneID + 100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	all, err := svc.SearchDrones(0, "")
	if err != nil || len(all) != 1 {
		t.Fatalf("SearchDrones = %d, %v", len(all), err)
	}
	if listed, _ := svc.ListDrones(); len(listed) != len(all) {
		t.Fatalf("unfiltered search should match ListDrones")
	}
	if c, err := svc.GetCategory(all[0].CategoryID); err != nil || c.Name != "Recon" {
		t.Fatalf("GetCategory = %+v, %v", c, err)
	}
	if _, err := svc.GetCategory(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestInventoryService_CheckAvailability(t *testing.T) {
	db, droneID := memdb(t)
	svc := NewInventoryService(repos.NewInventoryRepo(db))

	a, err := svc.CheckAvailability(droneID)
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != "LOW_STOCK" || a.Qty != 1 {
		t.Fatalf("want LOW_STOCK(1), got %+v", a)
	}
	if _, err := svc.CheckAvailability(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	drones := repos.NewDroneRepo(db)
	d, _ := drones.Get(droneID)
	soldOut, err := drones.Create(domain.Drone{
		Name: "Sold out", Model: "S0", CategoryID: d.CategoryID, Quantity: 0, Image: "s.gif",
	})
	if err != nil {
		t.Fatal(err)
	}
	if a, _ := svc.CheckAvailability(soldOut); a.Status != "OUT_OF_STOCK" || a.Qty != 0 {
		t.Fatalf("want OUT_OF_STOCK(0), got %+v", a)
	}

	for qty, want := range map[int]string{0: "OUT_OF_STOCK", 4: "LOW_STOCK", 5: "IN_STOCK", 999: "IN_STOCK"} {
		if got := Availability(qty).Status; got != want {
			t.Errorf("Availability(%d) = %s, want %s", qty, got, want)
		}
	}
}

func TestAuthService_RegisterLoginLogout(t *testing.T) {
	db, _ := memdb(t)
	auth := &AuthService{Users: repos.NewUserRepo(db)}

	u, err := auth.Register("sid-1", validate.Registration{Username: "newuser", Password: "StrongPass123!"})
	if err != nil {
		t.Fatal(err)
	}
	if cur, err := auth.CurrentUser("sid-1"); err != nil || cur.ID != u.ID {
		t.Fatalf("registration should sign in: %+v, %v", cur, err)
	}
	if _, err := auth.Register("sid-2", validate.Registration{Username: "NewUser", Password: "StrongPass123!"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("want ErrUsernameTaken, got %v", err)
	}

	if _, err := auth.Login("sid-3", "newuser", "wrong"); !errors.Is(err, ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}
	if _, err := auth.Login("sid-3", "ghost", "StrongPass123!"); !errors.Is(err, ErrBadCreds) {
		t.Fatalf("want ErrBadCreds for unknown user, got %v", err)
	}
	if _, err := auth.Login("sid-3", "newuser", "StrongPass123!"); err != nil {
		t.Fatal(err)
	}
	if err := auth.Logout("sid-3"); err != nil {
		t.Fatal(err)
	}
	if _, err := auth.CurrentUser("sid-3"); err == nil {
		t.Fatal("logout should end the session")
	}
}
