package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/glucokit/glucokit/internal/config"
)

func main() {
	fmt.Println("Validating configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf(".env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Configuration invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration valid.")
	fmt.Printf("  - DB Host: %s\n", cfg.DB.Host)
	fmt.Printf("  - DB Port: %s\n", cfg.DB.Port)
	fmt.Printf("  - DB User: %s\n", cfg.DB.User)
	fmt.Printf("  - DB Password: %s\n", maskSecret(cfg.DB.Password))
	fmt.Printf("  - DB Name: %s\n", cfg.DB.DBName)
	fmt.Printf("  - Redis: %s:%s (enabled: %v)\n", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Enabled)
	fmt.Printf("  - Eval Interval: %d minutes\n", cfg.Evaluation.IntervalMinutes)
	fmt.Printf("  - Short-Acting Hours: %d\n", cfg.Evaluation.ShortActingHours)
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}

func maskSecret(secret string) string {
	if secret == "" {
		return "<not set>"
	}
	if len(secret) <= 4 {
		return "***"
	}
	return secret[:2] + "..." + secret[len(secret)-2:]
}
