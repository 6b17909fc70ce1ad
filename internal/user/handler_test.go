package user

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(seed []User) *fiber.App {
	app := fiber.New()
	handler := NewHandler(NewService(NewInMemoryRepository(seed)))
	handler.RegisterPublicRoutes(app)
	return app
}

func TestRegister(t *testing.T) {
	app := makeApp(nil)

	req := httptest.NewRequest("POST", "/api/v1/registro", strings.NewReader(`{"nombre":"María","telefono":"88887777"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"token"`) {
		t.Fatalf("expected a token in the register response, got %s", string(b))
	}

	// same name+phone again conflicts
	req2 := httptest.NewRequest("POST", "/api/v1/registro", strings.NewReader(`{"nombre":"María","telefono":"88887777"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate registration, got %d", res2.StatusCode)
	}
}

func TestRegister_RequiresNameAndPhone(t *testing.T) {
	app := makeApp(nil)

	req := httptest.NewRequest("POST", "/api/v1/registro", strings.NewReader(`{"nombre":"María"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without phone, got %d", res.StatusCode)
	}
}

func TestLogin(t *testing.T) {
	app := makeApp([]User{{ID: 1, Name: "María", Phone: "88887777"}})

	req := httptest.NewRequest("POST", "/api/v1/ingreso", strings.NewReader(`{"nombre":"María","telefono":"88887777"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"token"`) {
		t.Fatalf("expected a token in the login response, got %s", string(b))
	}

	// wrong phone is rejected
	req2 := httptest.NewRequest("POST", "/api/v1/ingreso", strings.NewReader(`{"nombre":"María","telefono":"00000000"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", res2.StatusCode)
	}
}
