package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"condo-ops-backend/internal/auth"
	"condo-ops-backend/internal/config"
	"condo-ops-backend/internal/database"
	"condo-ops-backend/internal/database/models"
	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/scheduling"
	"condo-ops-backend/internal/service"
	"condo-ops-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the request DTOs
type DutyData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
	Shift       string `yaml:"shift"`
	Weekdays    []int  `yaml:"weekdays,omitempty"`
	DueDate     string `yaml:"due_date,omitempty"`
	Active      *bool  `yaml:"active,omitempty"`
}

type ReservationData struct {
	Space     string `yaml:"space"`
	Date      string `yaml:"date"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
	BookedBy  string `yaml:"booked_by"`
	Unit      string `yaml:"unit"`
	Note      string `yaml:"note,omitempty"`
	Completed bool   `yaml:"completed,omitempty"`
	Crew      string `yaml:"crew,omitempty"`
}

type ActorData struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// SeedFile is one YAML file under the data directory
type SeedFile struct {
	Tenant       string            `yaml:"tenant"`
	Actors       []ActorData       `yaml:"actors"`
	Duties       []DutyData        `yaml:"duties"`
	Reservations []ReservationData `yaml:"reservations"`
}

// seedActor performs every seed mutation
var seedActor = scheduling.Actor{ID: "seed", Name: "Initial data", Role: scheduling.RoleOwner}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var db *gorm.DB
	if cfg.StoreDriver == "postgres" {
		// Connect to database with retry (for dockerized Postgres startup)
		db, err = connectWithRetry(cfg.DatabaseURL, 60, time.Second)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
	}

	st, err := store.Open(cfg.StoreDriver, db, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	svc := service.NewSchedulingService(st, validator.New(), service.SchedulingOptions{
		Location:           cfg.Location(),
		CleaningWindow:     scheduling.CleaningWindow{Start: cfg.CleaningWindowStart, End: cfg.CleaningWindowEnd},
		PreparingLookahead: cfg.PreparingLookahead,
	})

	files, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	ctx := context.Background()
	for _, file := range files {
		tenantID := file.Tenant
		if tenantID == "" {
			tenantID = cfg.TenantID
		}
		if err := seedTenant(ctx, svc, tenantID, file); err != nil {
			log.Fatalf("Failed to seed tenant %s: %v", tenantID, err)
		}
		printTokens(cfg, tenantID, file.Actors)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFiles(dataDir string) ([]SeedFile, error) {
	var files []SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		files = append(files, file)
		return nil
	})

	return files, err
}

func seedTenant(ctx context.Context, svc *service.SchedulingService, tenantID string, file SeedFile) error {
	existing, err := svc.ListDuties(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to list duties: %w", err)
	}
	titles := make(map[string]bool, len(existing))
	for _, d := range existing {
		titles[d.Title] = true
	}

	dutiesCreated, dutiesSkipped := 0, 0
	for _, d := range file.Duties {
		if titles[d.Title] {
			dutiesSkipped++
			continue
		}
		_, err := svc.CreateDuty(ctx, tenantID, seedActor, &service.CreateDutyRequest{
			Title:       d.Title,
			Description: d.Description,
			Kind:        models.DutyKind(d.Kind),
			Shift:       models.ShiftType(d.Shift),
			Weekdays:    d.Weekdays,
			DueDate:     d.DueDate,
			Active:      d.Active,
		})
		if err != nil {
			return fmt.Errorf("failed to create duty %q: %w", d.Title, err)
		}
		titles[d.Title] = true
		dutiesCreated++
	}

	reservationsCreated, reservationsSkipped := 0, 0
	for _, r := range file.Reservations {
		created, err := svc.CreateReservation(ctx, tenantID, seedActor, &service.ReservationRequest{
			Space:     models.SpaceType(r.Space),
			Date:      r.Date,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			BookedBy:  r.BookedBy,
			Unit:      r.Unit,
			Note:      r.Note,
		})
		if apperrors.IsConflict(err) {
			// already seeded on an earlier run
			reservationsSkipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create reservation %s/%s: %w", r.Space, r.Date, err)
		}
		reservationsCreated++

		if r.Completed {
			if _, err := svc.CompleteReservation(ctx, tenantID, seedActor, created.ID, &service.CompleteReservationRequest{Crew: r.Crew}); err != nil {
				return fmt.Errorf("failed to complete reservation %s: %w", created.ID, err)
			}
		}
	}

	log.Printf("Tenant %s: duties created=%d skipped=%d, reservations created=%d skipped=%d",
		tenantID, dutiesCreated, dutiesSkipped, reservationsCreated, reservationsSkipped)
	return nil
}

// printTokens issues development tokens for the seeded actors
func printTokens(cfg *config.Config, tenantID string, actors []ActorData) {
	if len(actors) == 0 || cfg.IsProduction() {
		return
	}
	authConfig, err := auth.LoadAuthConfig("")
	if err != nil {
		// same fallback as cmd/server outside production
		authConfig = &auth.AuthConfig{JWTSecret: cfg.JWTSecret, Issuer: "condo-ops-backend", TokenTTL: 12 * time.Hour}
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		log.Printf("Skipping dev tokens: %v", err)
		return
	}

	for _, a := range actors {
		token, err := authService.GenerateJWT(scheduling.Actor{ID: a.ID, Name: a.Name, Role: scheduling.Role(a.Role)}, tenantID)
		if err != nil {
			log.Printf("Skipping token for %s: %v", a.ID, err)
			continue
		}
		log.Printf("🔑 %s (%s): %s", a.Name, a.Role, token)
	}
}
