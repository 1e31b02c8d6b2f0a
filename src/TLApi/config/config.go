package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MySQLDSN      string
	RedisURL      string
	JWTSecret     string
	AdminPassword string
	Port          string
	ClientURL     string

	AIProvider string
	AIModel    string
	GeminiKey  string
	OpenAIKey  string
	TavilyKey  string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	// Local development keeps credentials in .env; absence is fine.
	_ = godotenv.Load()

	return Config{
		MySQLDSN:      getenv("MYSQL_DSN", "truthlens:truthlens@tcp(localhost:3306)/truthlens?parseTime=true"),
		RedisURL:      getenv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:     getenv("JWT_SECRET", ""),
		AdminPassword: getenv("ADMIN_PASSWORD", ""),
		Port:          getenv("PORT", "5000"),
		ClientURL:     getenv("CLIENT_URL", "http://localhost:5173"),
		AIProvider:    getenv("AI_PROVIDER", "gemini"),
		AIModel:       os.Getenv("AI_MODEL"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		TavilyKey:     getenv("TAVILY_API_KEY", ""),
	}
}
