package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mentora/mentora_backend/internal/repo"
	"github.com/mentora/mentora_backend/internal/repo/enttest"
	entuser "github.com/mentora/mentora_backend/internal/repo/user"
	"github.com/mentora/mentora_backend/internal/service/booking"
	"github.com/mentora/mentora_backend/internal/service/tutor"
	pasetotoken "github.com/mentora/mentora_backend/pkg/paseto"
)

func newBookingApp(t *testing.T) (*fiber.App, *repo.Client, *repo.User) {
	t.Helper()

	db := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	caller := db.User.Create().
		SetName("Tom Tutor").
		SetEmail("tom@example.com").
		SetPasswordHash("x").
		SetRole(entuser.RoleTutor).
		SaveX(context.Background())

	h := NewBookingHandler(booking.New(db, nil), tutor.New(db))

	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals(pasetotoken.CtxKeyClaims, &pasetotoken.Claims{
			Type:   pasetotoken.TokenTypeAccess,
			UserID: caller.ID,
		})
		return c.Next()
	})
	app.Get("/bookings", h.List)
	app.Get("/bookings/tutor", h.ListForTutor)

	return app, db, caller
}

func TestListForTutorWithoutProfile(t *testing.T) {
	app, _, _ := newBookingApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/bookings/tutor", nil))
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	defer resp.Body.Close()

	// A tutor who has not set up a profile gets an empty list, not an error.
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET /bookings/tutor status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data == nil {
		t.Error("GET /bookings/tutor without profile returned null data, want []")
	}
	if len(body.Data) != 0 {
		t.Errorf("GET /bookings/tutor without profile = %d bookings, want 0", len(body.Data))
	}
}

func TestListQueryValidation(t *testing.T) {
	app, _, _ := newBookingApp(t)

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"unknown status", "/bookings?status=bogus", fiber.StatusBadRequest},
		{"malformed from", "/bookings?from=not-a-time", fiber.StatusBadRequest},
		{"malformed to", "/bookings?to=2026-13-99", fiber.StatusBadRequest},
		{"valid status", "/bookings?status=confirmed", fiber.StatusOK},
		{"valid window", "/bookings?from=2026-01-01T00:00:00Z&to=2026-02-01T00:00:00Z", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			if err != nil {
				t.Fatalf("request error = %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("GET %s status = %d, want %d", tt.target, resp.StatusCode, tt.want)
			}
		})
	}
}
