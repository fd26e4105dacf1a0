package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI     string
	MongoDB      string
	RedisAddr    string
	RedisPass    string
	HTTPPort     string
	NominatimURL string
	GeoUserAgent string
	GeoCacheTTLH int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "dinossauros_db"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		NominatimURL: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		GeoUserAgent: getEnv("GEO_USER_AGENT", "dino_app_mongo"),
		GeoCacheTTLH: getEnvInt("GEO_CACHE_TTL_H", 720),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s não está setado, usando valor padrão\n", key)
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s inválido (%q), usando %d\n", key, v, def)
		return def
	}
	return n
}
