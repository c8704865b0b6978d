package config

import "time"

type JWTConfig struct {
	Secret []byte
	TTL    time.Duration
}

func LoadJWTConfig() JWTConfig {
	return JWTConfig{
		Secret: []byte(GetEnv("JWT_SECRET", "")),
		TTL:    GetEnvAsDuration("JWT_TTL", 24*time.Hour),
	}
}
