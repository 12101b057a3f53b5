// Comando de seed: crea los hospitales de demostración con sus usuarios e
// inventarios. Idempotente, se puede correr varias veces.
package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
	"github.com/jhoicas/Inventario-hospitalario/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-hospitalario/pkg/config"
	"github.com/jhoicas/Inventario-hospitalario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().Msg("sembrando datos de demostración")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hospitalRepo := postgres.NewHospitalRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "demo1234"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("generar hash de password")
	}

	hospitalA := &entity.Hospital{
		ID:   1,
		Name: "General Hospital",
		Config: entity.HospitalConfig{
			InventoryHeaders: entity.HeadersConfig{
				Fields:      []string{"productName", "manufacturer", "category", "quantity"},
				DefaultSort: entity.SortSpec{Key: "productName", Order: entity.SortAsc},
			},
		},
	}
	hospitalB := &entity.Hospital{
		ID:   2,
		Name: "City Medical Center",
		Config: entity.HospitalConfig{
			InventoryHeaders: entity.HeadersConfig{
				Fields:      []string{"productName", "category", "expiryDate", "quantity", "manufacturer", "unitPrice"},
				DefaultSort: entity.SortSpec{Key: "expiryDate", Order: entity.SortAsc},
			},
		},
	}

	for _, h := range []*entity.Hospital{hospitalA, hospitalB} {
		if err := hospitalRepo.Create(h); err != nil {
			log.Fatal().Err(err).Str("hospital", h.Name).Msg("crear hospital")
		}
	}

	users := []*entity.User{
		{ID: 1, Name: "Alice Smith", Email: "alice.smith@generalhospital.com",
			PasswordHash: string(hash), Hospital: *hospitalA},
		{ID: 2, Name: "Bob Jones", Email: "bob.jones@citymedcenter.org",
			PasswordHash: string(hash), Hospital: *hospitalB},
	}
	for _, u := range users {
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("crear usuario")
		}
	}

	if err := inventoryRepo.ReplaceForHospital(ctx, hospitalA.ID, generalHospitalItems()); err != nil {
		log.Fatal().Err(err).Msg("sembrar inventario del General Hospital")
	}
	if err := inventoryRepo.ReplaceForHospital(ctx, hospitalB.ID, cityMedicalItems()); err != nil {
		log.Fatal().Err(err).Msg("sembrar inventario del City Medical Center")
	}

	log.Info().
		Int("hospitales", 2).
		Int("usuarios", len(users)).
		Msg("seed completado")
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func generalHospitalItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: 1, ProductName: "Insulin Pen", Manufacturer: "GlucoLife", Category: "Injection",
			Quantity: 100, ExpiryDate: "2027-03-01", UnitPrice: price("45.99")},
		{ID: 2, ProductName: "ECG Machine", Manufacturer: "HeartTech", Category: "Diagnostics",
			Quantity: 5, UnitPrice: price("1200.00")},
		{ID: 3, ProductName: "Disposable Syringe 5ml", Manufacturer: "MedSupply", Category: "Consumables",
			Quantity: 3500, ExpiryDate: "2026-12-31", UnitPrice: price("0.15")},
		{ID: 4, ProductName: "Paracetamol 500mg", Manufacturer: "PharmaPlus", Category: "Medication",
			Quantity: 2400, ExpiryDate: "2026-06-30", UnitPrice: price("0.05")},
		{ID: 5, ProductName: "Surgical Gloves (box)", Manufacturer: "MedSupply", Category: "Consumables",
			Quantity: 800, ExpiryDate: "2028-01-15", UnitPrice: price("6.50")},
	}
}

func cityMedicalItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: 1, ProductName: "MRI Scanner", Manufacturer: "HeartTech", Category: "Diagnostics",
			Quantity: 1, ExpiryDate: "2035-09-14", UnitPrice: price("5000.00")},
		{ID: 2, ProductName: "Ventilator", Manufacturer: "AirCare", Category: "Equipment",
			Quantity: 12, UnitPrice: price("3200.00")},
		{ID: 3, ProductName: "Saline Solution 1L", Manufacturer: "PharmaPlus", Category: "Medication",
			Quantity: 950, ExpiryDate: "2026-09-01", UnitPrice: price("1.20")},
		{ID: 4, ProductName: "Bandage Roll", Manufacturer: "MedSupply", Category: "Consumables",
			Quantity: 4200, ExpiryDate: "2029-05-20", UnitPrice: price("0.80")},
	}
}
