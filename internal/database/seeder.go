package database

import (
	"context"
	"time"

	"delivery-ops-api-server/config"
	"delivery-ops-api-server/internal/auth"
	"delivery-ops-api-server/internal/models"
	"delivery-ops-api-server/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var seedDrivers = []models.Driver{
	{FullName: "Mohammed Ali", Phone: "+971 50 123 4567", Active: true},
	{FullName: "Khalid Hassan", Phone: "+971 55 987 6543", Active: true},
	{FullName: "Ahmed Nasser", Phone: "+971 52 456 7890", Active: true},
	{FullName: "Omar Rashid", Phone: "+971 56 789 0123", Active: true},
}

// SeedAdmin creates the bootstrap admin profile if it does not exist yet.
func SeedAdmin(ctx context.Context, s store.Store, cfg config.SeedConfig, logger *zap.Logger) error {
	email := cfg.AdminEmail
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := s.GetProfileByEmail(ctx, email); err == nil {
		logger.Info("admin already exists, seeding skipped", zap.String("email", email))
		return nil
	}

	password := cfg.AdminPassword
	if password == "" {
		password = "adminpassword"
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Profile{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  "Admin",
		Password:  hashed,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.CreateProfile(ctx, admin); err != nil {
		return err
	}

	logger.Info("admin seeded", zap.String("email", email))
	return nil
}

// SeedDrivers loads the initial driver roster on an empty drivers collection.
func SeedDrivers(ctx context.Context, s store.Store, logger *zap.Logger) error {
	existing, err := s.ListDrivers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, d := range seedDrivers {
		d.ID = uuid.NewString()
		d.CreatedAt = time.Now().UTC()
		if err := s.CreateDriver(ctx, &d); err != nil {
			return err
		}
		logger.Info("driver seeded", zap.String("name", d.FullName))
	}
	return nil
}
