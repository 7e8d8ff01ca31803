// seed crea los datos iniciales si la base está vacía: un usuario admin
// (admin@pedidos.local / Admin123!) y dos productos de demostración.
//
// Uso: go run ./cmd/seed
// Idempotente: si ya existen usuarios no hace nada.
package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pedidos-api/pkg/config"
	"github.com/jhoicas/pedidos-api/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	existing, err := userRepo.List(1, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuarios")
	}
	if len(existing) > 0 {
		log.Info().Msg("la base ya tiene usuarios, no se siembra nada")
		os.Exit(0)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}
	now := time.Now()
	admin := &entity.User{
		Name:         "Admin",
		Email:        "admin@pedidos.local",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Int64("id", admin.ID).Str("email", admin.Email).Msg("admin creado")

	demo := []*entity.Product{
		{Name: "Cafe", Description: "Café molido 500g", Category: "Bebidas", Price: decimal.NewFromFloat(30.00), Stock: 50, CreatedAt: now, UpdatedAt: now},
		{Name: "Azúcar", Description: "Azúcar refinada 1kg", Category: "Abarrotes", Price: decimal.NewFromFloat(15.00), Stock: 200, CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range demo {
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("crear producto")
		}
		log.Info().Int64("id", p.ID).Str("name", p.Name).Msg("producto creado")
	}

	log.Info().Msg("siembra completada")
}
