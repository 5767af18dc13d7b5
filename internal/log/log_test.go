package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type line struct {
	Level  string         `json:"level"`
	Kind   string         `json:"kind"`
	Action string         `json:"action"`
	Method string         `json:"method"`
	Path   string         `json:"path"`
	UserID int64          `json:"user_id"`
	Err    string         `json:"err"`
	Fields map[string]any `json:"fields"`
}

type fakeUser struct{ id int64 }

func (u fakeUser) LogID() int64 { return u.id }

func decode(t *testing.T, buf *bytes.Buffer) []line {
	t.Helper()
	var out []line
	for _, s := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if s == "" {
			continue
		}
		var l line
		if err := json.Unmarshal([]byte(s), &l); err != nil {
			t.Fatalf("not json: %q: %v", s, err)
		}
		out = append(out, l)
	}
	return out
}

func TestEventsWithoutContext(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Audit(nil, "order.create", map[string]any{"order_id": 7})
	Error(nil, "server.error", errors.New("boom"), nil)

	lines := decode(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	if lines[0].Kind != "audit" || lines[0].Level != "info" || lines[0].Action != "order.create" {
		t.Fatalf("bad audit line %+v", lines[0])
	}
	if lines[0].Fields["order_id"] != float64(7) {
		t.Fatalf("fields not carried: %+v", lines[0].Fields)
	}
	if lines[1].Level != "error" || lines[1].Err != "boom" {
		t.Fatalf("bad error line %+v", lines[1])
	}
}

func TestEventsCarryRequest(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		c.Locals("user", fakeUser{id: 42})
		Security(c, "access.denied.orders", nil)
		return c.SendStatus(fiber.StatusNoContent)
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/x", nil)); err != nil {
		t.Fatal(err)
	}

	lines := decode(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	l := lines[0]
	if l.Level != "warn" || l.Method != "GET" || l.Path != "/x" || l.UserID != 42 {
		t.Fatalf("bad line %+v", l)
	}
}
