package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/tair/starwars-api/pkg/database"
	"github.com/tair/starwars-api/pkg/logger"
)

type person struct {
	name      string
	height    string
	mass      string
	hairColor string
	eyeColor  string
	birthYear string
	gender    string
}

type planet struct {
	name       string
	diameter   string
	climate    string
	terrain    string
	population string
}

var samplePeople = []person{
	{"Luke Skywalker", "172", "77", "blond", "blue", "19BBY", "male"},
	{"Darth Vader", "202", "136", "none", "yellow", "41.9BBY", "male"},
	{"Leia Organa", "150", "49", "brown", "brown", "19BBY", "female"},
	{"Obi-Wan Kenobi", "182", "77", "auburn, white", "blue-gray", "57BBY", "male"},
	{"Yoda", "66", "17", "white", "brown", "896BBY", "male"},
	{"Han Solo", "180", "80", "brown", "brown", "29BBY", "male"},
	{"Chewbacca", "228", "112", "brown", "blue", "200BBY", "male"},
	{"R2-D2", "96", "32", "n/a", "red", "33BBY", "n/a"},
	{"C-3PO", "167", "75", "n/a", "yellow", "112BBY", "n/a"},
	{"Padmé Amidala", "185", "45", "brown", "brown", "46BBY", "female"},
}

var samplePlanets = []planet{
	{"Tatooine", "10465", "arid", "desert", "200000"},
	{"Alderaan", "12500", "temperate", "grasslands, mountains", "2000000000"},
	{"Hoth", "7200", "frozen", "tundra, ice caves, mountain ranges", "unknown"},
	{"Dagobah", "8900", "murky", "swamp, jungles", "unknown"},
	{"Bespin", "118000", "temperate", "gas giant", "6000000"},
	{"Endor", "4900", "temperate", "forests, mountains, lakes", "30000000"},
	{"Naboo", "12120", "temperate", "grassy hills, swamps, forests, mountains", "4500000000"},
	{"Coruscant", "12240", "temperate", "cityscape, mountains", "1000000000000"},
	{"Kamino", "19720", "temperate", "ocean", "1000000000"},
	{"Kashyyyk", "12765", "tropical", "jungle, forests, lakes, rivers", "45000000"},
}

func main() {
	logger.Init("starwars-seed", true)

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "starwars"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Seeding failed")
	}

	logger.Logger.Info().
		Int("people", len(samplePeople)).
		Int("planets", len(samplePlanets)).
		Msg("Seeding completed")
}

// seed inserts the sample data, skipping rows whose name already exists
func seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range samplePeople {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO people (name, height, mass, hair_color, eye_color, birth_year, gender, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			 ON CONFLICT (name) DO NOTHING`,
			p.name, p.height, p.mass, p.hairColor, p.eyeColor, p.birthYear, p.gender,
		)
		if err != nil {
			return err
		}
	}

	for _, p := range samplePlanets {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO planets (name, diameter, climate, terrain, population, created_at)
			 VALUES ($1, $2, $3, $4, $5, NOW())
			 ON CONFLICT (name) DO NOTHING`,
			p.name, p.diameter, p.climate, p.terrain, p.population,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (username, email, password, is_active, created_at)
		 VALUES ($1, $2, $3, TRUE, NOW())
		 ON CONFLICT (username) DO NOTHING`,
		"demo", "demo@example.com", "demo1234",
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
