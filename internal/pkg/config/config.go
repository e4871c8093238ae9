package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		SessionCleanupInterval time.Duration
		DraftCleanupInterval   time.Duration
	}

	HTTPServer struct {
		Port               string
		RequestTimeout     time.Duration // middleware timeout
		RateLimiterQPS     int           // per-client refill rate
		RateLimiterBurst   int           // per-client bucket capacity
		CORSAllowedOrigins []string
		PprofEnabled       bool
		PprofPort          string
	}

	Auth struct {
		JWTSecret  string
		SessionTTL time.Duration
	}

	Drafts struct {
		IdleTTL          time.Duration
		StrictStepGating bool
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string

		MaxConns           int
		MinConns           int
		SlowQueryThreshold time.Duration
	}

	OrderService struct {
		GRPCHost string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Producer        Producer
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	Producer struct {
		Topic    string
		RetryMax int
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		LogLevel     string
		Tasks        Tasks
		Server       HTTPServer
		Auth         Auth
		Drafts       Drafts
		Database     Database
		OrderService OrderService
		Kafka        Kafka
	}
)

const (
	defaultLogLevel        = "info"
	defaultSessionTTL      = 8 * time.Hour
	defaultDraftIdleTTL    = 2 * time.Hour
	defaultProducerRetries = 5

	defaultStrictStepGating = true

	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultPoolMaxConns       = 10
	defaultPoolMinConns       = 2
)

// BrokerList splits the comma separated KAFKA_BROKERS value.
func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase reads only the LOG_LEVEL and POSTGRES_* variables, for tools that
// never start the HTTP server or talk to Kafka.
func LoadDatabase() (*Config, error) {
	db, err := databaseFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	cfg := &Config{
		LogLevel: osGetOrDefault("LOG_LEVEL", defaultLogLevel),
		Database: db,
	}
	if err := validateDatabase(cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func databaseFromEnv() (Database, error) {
	slowQuery, err := osGetEnvDuration("POSTGRES_SLOW_QUERY_THRESHOLD")
	if err != nil {
		return Database{}, fmt.Errorf("loading config: %w", err)
	}

	maxConns, err := osGetInt("POSTGRES_POOL_MAX_CONNS")
	if err != nil {
		return Database{}, fmt.Errorf("loading config: %w", err)
	}

	minConns, err := osGetInt("POSTGRES_POOL_MIN_CONNS")
	if err != nil {
		return Database{}, fmt.Errorf("loading config: %w", err)
	}

	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),

		MaxConns:           intOrDefault(maxConns, defaultPoolMaxConns),
		MinConns:           intOrDefault(minConns, defaultPoolMinConns),
		SlowQueryThreshold: durationOrDefault(slowQuery, defaultSlowQueryThreshold),
	}, nil
}

func loadFromEnv() (*Config, error) {
	database, err := databaseFromEnv()
	if err != nil {
		return nil, err
	}

	sessionInterval, err := osGetEnvDuration("BACKGROUND_SESSION_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	draftInterval, err := osGetEnvDuration("BACKGROUND_DRAFT_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionTTL, err := osGetEnvDuration("AUTH_SESSION_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	draftIdleTTL, err := osGetEnvDuration("DRAFT_IDLE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	strictGating, err := osGetBoolOrDefault("DRAFT_STRICT_STEP_GATING", defaultStrictStepGating)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	producerRetries, err := osGetInt("KAFKA_PRODUCER_RETRY_MAX")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: osGetOrDefault("LOG_LEVEL", defaultLogLevel),
		Tasks: Tasks{
			SessionCleanupInterval: sessionInterval,
			DraftCleanupInterval:   draftInterval,
		},
		Server: HTTPServer{
			Port:               os.Getenv("PORT"),
			RequestTimeout:     requestTimeout,
			RateLimiterQPS:     rateLimiterQPS,
			RateLimiterBurst:   rateLimiterBurst,
			CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
			PprofEnabled:       pprofEnabled,
			PprofPort:          os.Getenv("PPROF_PORT"),
		},
		Auth: Auth{
			JWTSecret:  os.Getenv("AUTH_JWT_SECRET"),
			SessionTTL: durationOrDefault(sessionTTL, defaultSessionTTL),
		},
		Drafts: Drafts{
			IdleTTL:          durationOrDefault(draftIdleTTL, defaultDraftIdleTTL),
			StrictStepGating: strictGating,
		},
		Database: database,
		OrderService: OrderService{
			GRPCHost: os.Getenv("ORDER_SERVICE_GRPC_HOST"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Producer: Producer{
				Topic:    os.Getenv("KAFKA_PRODUCER_TOPIC"),
				RetryMax: intOrDefault(producerRetries, defaultProducerRetries),
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if len(cfg.Auth.JWTSecret) < 32 {
		return errors.New("AUTH_JWT_SECRET is required and must be at least 32 bytes")
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.SessionCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SESSION_CLEANUP_INTERVAL is required")
	}
	if cfg.Tasks.DraftCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DRAFT_CLEANUP_INTERVAL is required")
	}

	if cfg.OrderService.GRPCHost == "" {
		return errors.New("ORDER_SERVICE_GRPC_HOST is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Producer.Topic == "" {
		return errors.New("KAFKA_PRODUCER_TOPIC is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("POSTGRES_POOL_MIN_CONNS=%d exceeds POSTGRES_POOL_MAX_CONNS=%d", db.MinConns, db.MaxConns)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func osGetOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationOrDefault(d, fallback time.Duration) time.Duration {
	if d == 0 {
		return fallback
	}
	return d
}

func intOrDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBoolOrDefault(s string, fallback bool) (bool, error) {
	if os.Getenv(s) == "" {
		return fallback, nil
	}
	return osGetBool(s)
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
