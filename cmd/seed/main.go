// seed inserta productos de demostración con stock inicial para desarrollo local.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración de BD que cmd/api (env / .env).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/infrastructure/postgres"
	"github.com/jhoicas/kardex-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewProductRepository(pool)

	demo := []*entity.Product{
		{SKU: "TECL-001", Name: "Teclado mecánico", Description: "Switches rojos, ES-LA", Price: decimal.NewFromInt(180000), Stock: decimal.NewFromInt(25)},
		{SKU: "MOUS-001", Name: "Mouse inalámbrico", Description: "2.4GHz + Bluetooth", Price: decimal.NewFromInt(95000), Stock: decimal.NewFromInt(40)},
		{SKU: "MONI-001", Name: "Monitor 27\"", Description: "IPS 1440p 75Hz", Price: decimal.NewFromInt(1250000), Stock: decimal.NewFromInt(10)},
		{SKU: "CABL-001", Name: "Cable HDMI 2m", Description: "", Price: decimal.NewFromInt(28000), Stock: decimal.NewFromInt(120)},
		{SKU: "AUDI-001", Name: "Audífonos USB", Description: "Con micrófono", Price: decimal.NewFromInt(150000), Stock: decimal.NewFromInt(0)},
	}

	for _, p := range demo {
		if err := repo.Create(p); err != nil {
			fmt.Fprintf(os.Stderr, "insertar %s: %v\n", p.SKU, err)
			continue
		}
		fmt.Printf("producto %s (%s) stock inicial %s\n", p.SKU, p.ID, p.Stock)
	}
}
