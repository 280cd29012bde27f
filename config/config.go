package config

import "os"

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	AccessSecret    string
	StripeSecretKey string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		DBName:          getEnv("DB_NAME", "weddingDB"),
		AccessSecret:    os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
