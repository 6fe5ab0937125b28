// Package bootstrap performs the one-time startup seeding: database indexes
// and the admin account. It runs single-threaded before the HTTP server
// starts accepting requests.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
	mongorepo "github.com/jobportal/job-portal/internal/infrastructure/db/mongo"
)

// Run ensures indexes exist and the admin account is present. Creating the
// admin goes through the regular registration workflow so the identity and
// its company profile stay transactionally coupled.
func Run(ctx context.Context, db *mongo.Database, auth ports.AuthService, adminEmail, adminPassword string, log zerolog.Logger) error {
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	_, err := auth.RegisterCompany(ctx, ports.RegisterCompanyInput{
		Name:     "Administrator",
		Email:    adminEmail,
		Password: adminPassword,
	})
	switch {
	case err == nil:
		log.Info().Str("email", adminEmail).Msg("admin account created")
	case errors.Is(err, domain.ErrDuplicateEmail):
		log.Debug().Str("email", adminEmail).Msg("admin account already exists")
	default:
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
