package datafeed

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

var DB *sql.DB

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func InitDatabase() error {
	config := DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: os.Getenv("DB_PASSWORD"), // Required - no default
		DBName:   getEnvOrDefault("DB_NAME", "thememaker"),
		SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err = initializeSchema(); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	fmt.Println("Database connected successfully!")
	return nil
}

// initializeSchema creates the analysis tables if they don't exist
func initializeSchema() error {
	schemaSQL := `
	CREATE TABLE IF NOT EXISTS sentiment_history (
		id SERIAL PRIMARY KEY,
		stock_code TEXT NOT NULL,
		stock_name TEXT NOT NULL,
		sentiment_score REAL NOT NULL,
		sentiment_label TEXT NOT NULL,
		news_count INTEGER NOT NULL,
		positive_ratio REAL NOT NULL,
		negative_ratio REAL NOT NULL,
		data_source TEXT,
		note TEXT,
		analyzed_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS candidate_snapshots (
		id SERIAL PRIMARY KEY,
		stock_code TEXT NOT NULL,
		stock_name TEXT NOT NULL,
		current_price BIGINT NOT NULL,
		change_rate REAL NOT NULL,
		volume BIGINT NOT NULL,
		theme_name TEXT NOT NULL,
		theme_profit_rate REAL NOT NULL,
		captured_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sentiment_history_code ON sentiment_history(stock_code);
	CREATE INDEX IF NOT EXISTS idx_candidate_snapshots_code ON candidate_snapshots(stock_code);
	`

	_, err := DB.Exec(schemaSQL)
	return err
}

func CloseDatabase() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func HealthCheck() error {
	if DB == nil {
		return fmt.Errorf("database connection is nil")
	}
	return DB.Ping()
}
