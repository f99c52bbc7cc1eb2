package config

import (
	"os"
	"strings"
	"time"
)

// Config captures process-level configuration so main stays lean.
type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	// ServiceCredential gates construction of the privileged identity
	// admin capability. Distinct from any session credential.
	ServiceCredential string

	Redis RedisConfig

	// EntitlementURL points at the external entitlement service. Empty
	// disables the live client; the reconciler still clears local state.
	EntitlementURL    string
	EntitlementAPIKey string

	// KafkaBrokers enables the compliance audit publisher when non-empty.
	KafkaBrokers []string
	AuditTopic   string
}

// RedisConfig holds connection settings for the Redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables with development
// defaults. Production deployments override every secret.
func FromEnv() Config {
	cfg := Config{
		Addr:              envOr("KITH_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("KITH_DATABASE_URL"),
		JWTSigningKey:     envOr("KITH_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:         envOr("KITH_JWT_ISSUER", "kith"),
		JWTAudience:       envOr("KITH_JWT_AUDIENCE", "kith-app"),
		ServiceCredential: envOr("KITH_SERVICE_CREDENTIAL", "dev-service-credential"),
		EntitlementURL:    os.Getenv("KITH_ENTITLEMENT_URL"),
		EntitlementAPIKey: os.Getenv("KITH_ENTITLEMENT_API_KEY"),
		AuditTopic:        envOr("KITH_AUDIT_TOPIC", "kith.audit.compliance"),
		Redis: RedisConfig{
			URL:          os.Getenv("KITH_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}

	if brokers := os.Getenv("KITH_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
