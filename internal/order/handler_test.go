package order

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/josuemn/canastas-backend/internal/cart"
)

func makeAppWithOrderHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

const commitBody = `{
	"total": 190.00,
	"payment_type_id": 1,
	"delivery_address": "Managua, de la rotonda 2c al sur",
	"items": [
		{
			"ref": "e1",
			"tipo": "Canasta_Configurada",
			"nombre": "Clásica",
			"cantidad": 1,
			"id_canasta_original": 1,
			"precio_base": 150.00,
			"precio_final": 190.00,
			"detalle_personalizado": [
				{"id": 10, "nombre": "Chocolate con leche", "precio": 20.00, "cantidad": 2}
			]
		}
	]
}`

func TestCreateOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(newTestService(repo))
	app := makeAppWithOrderHandler(handler)

	// unauthenticated requests are rejected
	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(commitBody))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated POST, got %d", res.StatusCode)
	}

	// a valid commit creates the order
	req2 := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(commitBody))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "7")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(res2.Body)
		t.Fatalf("expected 201, got %d: %s", res2.StatusCode, string(b))
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"status":"pending"`) {
		t.Fatalf("expected pending status in response, got %s", string(b2))
	}

	// the line items landed with the order
	orders, _ := repo.ListByUser(7)
	if len(orders) != 1 {
		t.Fatalf("expected 1 stored order, got %d", len(orders))
	}
	items, _ := repo.ListItems(orders[0].ID)
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
}

func TestCreateOrder_InvalidPayloadRejected(t *testing.T) {
	handler := NewHandler(newTestService(NewInMemoryRepository()))
	app := makeAppWithOrderHandler(handler)

	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(`{"total": 0, "items": []}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", res.StatusCode)
	}
}

func TestCreateOrder_PersistenceFailureIsGeneric(t *testing.T) {
	handler := NewHandler(newTestService(failingRepository{}))
	app := makeAppWithOrderHandler(handler)

	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(commitBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for persistence failure, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if strings.Contains(string(b), "connection reset") {
		t.Fatalf("internal error detail leaked to the client: %s", string(b))
	}
}

func TestGetOrder_ScopedToOwner(t *testing.T) {
	repo := NewInMemoryRepository()
	service := newTestService(repo)
	created, err := service.Commit(7, []cart.Entry{configuredEntry()}, 1, "Managua", nil, 190.00)
	if err != nil {
		t.Fatalf("seeding order: %v", err)
	}

	app := makeAppWithOrderHandler(NewHandler(service))
	path := "/api/v1/orders/" + strconv.Itoa(created.ID)

	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"items"`) {
		t.Fatalf("expected items in response, got %s", string(b))
	}

	// another user never sees the order
	req2 := httptest.NewRequest("GET", path, nil)
	req2.Header.Set("X-User-ID", "8")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for non-owner, got %d", res2.StatusCode)
	}
}
