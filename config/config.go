package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"azan/internal/domain/constants"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSchedulerSpec      = "* * * * *"
	defaultTickTimeout        = 45 * time.Second
	defaultBatchSize          = 500
	defaultConcurrency        = 4
	defaultDeliveryTimeout    = 2 * time.Minute
	defaultHeartbeatInterval  = 30 * time.Second
	defaultSendBuffer         = 16
	defaultRedisChannel       = "azan:realtime"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	// Clock configures the fixed UTC offset local calendar minutes are derived from
	Clock ClockConfig `json:"clock" yaml:"clock"`

	// Scheduler configures the per-minute tick driver
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Notification configures the push notification gateway
	Notification NotificationConfig `json:"notification" yaml:"notification"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Broadcast configures the realtime fan-out to connected viewers
	Broadcast BroadcastConfig `json:"broadcast" yaml:"broadcast"`

	// Realtime configures the websocket endpoint viewers connect to
	Realtime RealtimeConfig `json:"realtime" yaml:"realtime"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines schema management options
type DatabaseConfig struct {
	// AutoMigrate creates or updates the owned tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold is the query duration logged as slow; 0 uses 200ms
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// ClockConfig defines the local calendar used by the trigger engine.
// Named time zones are not supported on purpose; only a fixed offset.
type ClockConfig struct {
	// UTCOffsetMinutes is added to UTC, e.g. 330 for UTC+05:30. Clamped to ±840.
	UTCOffsetMinutes *int `json:"utcOffsetMinutes" yaml:"utcOffsetMinutes"`
}

// SchedulerConfig defines the tick driver
type SchedulerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Cron spec evaluated in UTC, one tick per minute by default
	Spec string `json:"spec" yaml:"spec"`

	// TickTimeout bounds the store reads of a single tick
	TickTimeout time.Duration `json:"tickTimeout" yaml:"tickTimeout"`
}

// NotificationConfig defines the push gateway
type NotificationConfig struct {
	// Provider: "firebase" or "log"
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=firebase log"`

	// BatchSize is capped at the provider's per-request limit
	BatchSize int `json:"batchSize" yaml:"batchSize" validate:"gte=0"`

	// Concurrency is the number of batches submitted in parallel
	Concurrency int `json:"concurrency" yaml:"concurrency" validate:"gte=0"`

	// ChannelID is the Android notification channel for visible pushes
	ChannelID string `json:"channelId" yaml:"channelId"`

	// DeliveryTimeout bounds a whole delivery run, detached from the tick
	DeliveryTimeout time.Duration `json:"deliveryTimeout" yaml:"deliveryTimeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// BroadcastConfig defines the realtime broadcast provider
type BroadcastConfig struct {
	// Provider: "local" (in-process hub), "redis" (relay across instances) or
	// "google" (local hub plus export to a Pub/Sub topic)
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local redis google"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// RedisConfig defines the Redis relay connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Channel  string `json:"channel" yaml:"channel"`
}

// PubSubConfig defines Pub/Sub configuration for trigger event export
type PubSubConfig struct {
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`
}

// RealtimeConfig defines websocket session behaviour
type RealtimeConfig struct {
	HeartbeatInterval time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`
	SendBuffer        int           `json:"sendBuffer" yaml:"sendBuffer"`
	AllowedOrigins    []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// findConfigFile returns the first existing name under the working directory
// or one of paths. Relative paths resolve against the working directory.
func findConfigFile(name string, paths []string) (string, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	for _, dir := range append([]string{defaultPath}, paths...) {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(pwd, dir)
		}
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", name)
}

// LoadWithEnv loads <currEnv>.yaml through koanf, then applies environment
// overrides such as CLOCK_UTCOFFSETMINUTES=-180.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// OffsetMinutes returns the configured UTC offset, UTC+05:30 when unset.
func (c ClockConfig) OffsetMinutes() int {
	if c.UTCOffsetMinutes == nil {
		return constants.DefaultUTCOffsetMinutes
	}

	return *c.UTCOffsetMinutes
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.Scheduler.Spec) == "" {
		cfg.Scheduler.Spec = defaultSchedulerSpec
	}
	if cfg.Scheduler.TickTimeout <= 0 {
		cfg.Scheduler.TickTimeout = defaultTickTimeout
	}

	if cfg.Notification.Provider == "" {
		cfg.Notification.Provider = constants.PushProviderFirebase
		if cfg.Firebase == nil {
			cfg.Notification.Provider = constants.PushProviderLog
		}
	}
	if cfg.Notification.BatchSize <= 0 || cfg.Notification.BatchSize > defaultBatchSize {
		cfg.Notification.BatchSize = defaultBatchSize
	}
	if cfg.Notification.Concurrency <= 0 {
		cfg.Notification.Concurrency = defaultConcurrency
	}
	if cfg.Notification.ChannelID == "" {
		cfg.Notification.ChannelID = constants.DefaultAndroidChannelID
	}
	if cfg.Notification.DeliveryTimeout <= 0 {
		cfg.Notification.DeliveryTimeout = defaultDeliveryTimeout
	}

	if cfg.Broadcast.Provider == "" {
		cfg.Broadcast.Provider = constants.BroadcastProviderLocal
	}
	if cfg.Broadcast.Redis != nil && cfg.Broadcast.Redis.Channel == "" {
		cfg.Broadcast.Redis.Channel = defaultRedisChannel
	}

	if cfg.Realtime.HeartbeatInterval <= 0 {
		cfg.Realtime.HeartbeatInterval = defaultHeartbeatInterval
	}
	if cfg.Realtime.SendBuffer <= 0 {
		cfg.Realtime.SendBuffer = defaultSendBuffer
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
