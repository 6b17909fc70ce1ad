package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/josuemn/canastas-backend/internal/address"
	"github.com/josuemn/canastas-backend/internal/catalog"
	"github.com/josuemn/canastas-backend/internal/config"
	"github.com/josuemn/canastas-backend/internal/order"
	"github.com/josuemn/canastas-backend/internal/payment"
	"github.com/josuemn/canastas-backend/internal/receipt"
	"github.com/josuemn/canastas-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(accessLog)

	db := mustOpenDB(cfg)
	defer db.Close()

	bootstrapSchema(db)

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService)

	catalogService := catalog.NewService(catalog.NewPostgresRepository(db))
	catalogHandler := catalog.NewHandler(catalogService)

	paymentService := payment.NewService(payment.NewPostgresRepository(db))
	paymentHandler := payment.NewHandler(paymentService)

	orderService := order.NewService(order.NewPostgresRepository(db), catalogService, paymentService)
	orderHandler := order.NewHandler(orderService)

	receiptHandler := receipt.NewHandler(receipt.NewService(orderService))

	addressService := address.NewService(address.NewPostgresRepository(db))
	addressHandler := address.NewHandler(addressService)

	// public surface: auth plus everything the catalog pages need before login
	userHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	paymentHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	receiptHandler.RegisterProtectedRoutes(app)
	addressHandler.RegisterProtectedRoutes(app)

	if err := app.Listen(cfg.Addr); err != nil {
		panic(err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("%s %s -> %d (%v)\n", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// bootstrapSchema creates the tables this service needs and seeds lookup and
// catalog data when the tables are empty.
func bootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			"userId" SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT,
			"createdAt" TEXT,
			"updatedAt" TEXT,
			UNIQUE (name, phone)
		)`,
		`CREATE TABLE IF NOT EXISTS baskets (
			"basketId" SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			"basePrice" numeric NOT NULL DEFAULT 0,
			size TEXT,
			"customizationLimit" INT NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS candies (
			"candyId" SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			"unitPrice" numeric NOT NULL DEFAULT 0,
			type TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			stock INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS basket_contents (
			"basketId" INT NOT NULL,
			"candyId" INT NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			PRIMARY KEY ("basketId", "candyId")
		)`,
		`CREATE TABLE IF NOT EXISTS payment_types (
			"paymentTypeId" SERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			"orderID" SERIAL PRIMARY KEY,
			"userID" INT NOT NULL,
			total numeric NOT NULL DEFAULT 0,
			"paymentTypeId" INT NOT NULL,
			status TEXT,
			"giftMessage" TEXT,
			"deliveryAddress" TEXT NOT NULL,
			"createdAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			"orderItemID" SERIAL PRIMARY KEY,
			"orderID" INT NOT NULL REFERENCES orders("orderID"),
			"productType" TEXT NOT NULL,
			"productId" INT NOT NULL,
			"productName" TEXT NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			"unitPrice" numeric NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS addresses (
			"addressId" SERIAL PRIMARY KEY,
			"userId" INT NOT NULL,
			label TEXT,
			line TEXT NOT NULL,
			phone TEXT,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}

	seedPaymentTypes(db)
	seedCatalog(db)
}

func seedPaymentTypes(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM payment_types`).Scan(&count); err != nil || count > 0 {
		return
	}
	for _, name := range []string{"Efectivo", "Tarjeta", "Transferencia"} {
		if _, err := db.Exec(`INSERT INTO payment_types (name) VALUES ($1)`, name); err != nil {
			fmt.Printf("warning: could not seed payment type %q: %v\n", name, err)
		}
	}
}

func seedCatalog(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM baskets`).Scan(&count); err != nil || count > 0 {
		return
	}

	baskets := []struct {
		name, desc, size string
		price            float64
		limit            int
	}{
		{"Clásica", "Canasta clásica con dulces tradicionales", "mediana", 150.00, 3},
		{"Premium", "Canasta premium con chocolates finos", "grande", 250.00, 5},
		{"Pequeña", "Canasta pequeña para un detalle", "pequeña", 90.00, 2},
	}
	for _, b := range baskets {
		if _, err := db.Exec(
			`INSERT INTO baskets (name, description, "basePrice", size, "customizationLimit", active) VALUES ($1,$2,$3,$4,$5,TRUE)`,
			b.name, b.desc, b.price, b.size, b.limit,
		); err != nil {
			fmt.Printf("warning: could not seed basket %q: %v\n", b.name, err)
		}
	}

	candies := []struct {
		name, typ string
		price     float64
		stock     int
	}{
		{"Chocolate con leche", "chocolate", 20.00, 100},
		{"Gomitas de frutas", "gomita", 12.50, 80},
		{"Caramelo de café", "caramelo", 8.00, 120},
		{"Paleta artesanal", "paleta", 15.00, 60},
	}
	for _, c := range candies {
		if _, err := db.Exec(
			`INSERT INTO candies (name, "unitPrice", type, active, stock) VALUES ($1,$2,$3,TRUE,$4)`,
			c.name, c.price, c.typ, c.stock,
		); err != nil {
			fmt.Printf("warning: could not seed candy %q: %v\n", c.name, err)
		}
	}
}
