package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultDispatchWorkers  = 10
	defaultDispatchAttempts = 3
	defaultBackoffBase      = 500 * time.Millisecond
	defaultAttemptTimeout   = 5 * time.Second
	defaultVAPIDTokenTTL    = 12 * time.Hour
	maxVAPIDTokenTTL        = 24 * time.Hour
	defaultMessageTTL       = 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Store describes the storefront on whose behalf notifications are sent.
	Store StoreConfig `json:"store" yaml:"store"`

	// VAPID configures the application server keys and the proof-of-origin
	// token attached to every push delivery.
	VAPID *VAPIDConfig `json:"vapid" yaml:"vapid"`

	// Dispatch configures the delivery cycle of the push dispatcher.
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// PubSub configuration for restock event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// InternalAuth protects the internal restock trigger route.
	InternalAuth *InternalAuthConfig `json:"internalAuth" yaml:"internalAuth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines the storefront identity used in notification content
type StoreConfig struct {
	Name        string `json:"name" yaml:"name"`
	RestockText string `json:"restockText" yaml:"restockText"`
}

// VAPIDConfig defines the application server key pair and token bounds.
// Keys are base64url-encoded: the private key is the 32-byte P-256 scalar,
// the public key the 65-byte uncompressed point.
type VAPIDConfig struct {
	PublicKey  string `json:"publicKey" yaml:"publicKey"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`

	// Subscriber is the contact address claimed in the VAPID token,
	// e.g. "ops@example.com" (the mailto: scheme is added automatically).
	Subscriber string `json:"subscriber" yaml:"subscriber"`

	// TokenTTL bounds the proof-of-origin token expiry. Capped at 24h.
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`

	// MessageTTL is the TTL header sent to the push service, bounding how
	// long it holds an undelivered message.
	MessageTTL time.Duration `json:"messageTtl" yaml:"messageTtl"`
}

// DispatchConfig defines the dispatcher's concurrency and retry behaviour.
// The retry constants are deliberate configuration, not contract.
type DispatchConfig struct {
	// Workers bounds how many deliveries run concurrently in one cycle.
	Workers int `json:"workers" yaml:"workers"`

	// MaxAttempts caps delivery attempts per request within one cycle;
	// transient failures beyond the cap wait for the next cycle.
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`

	// BackoffBase is the first retry delay; each further retry doubles it.
	BackoffBase time.Duration `json:"backoffBase" yaml:"backoffBase"`

	// AttemptTimeout bounds a single delivery attempt.
	AttemptTimeout time.Duration `json:"attemptTimeout" yaml:"attemptTimeout"`
}

// PubSubConfig defines Pub/Sub configuration for restock event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// InternalAuthConfig defines the shared token required on internal routes
type InternalAuthConfig struct {
	Token string `json:"token" yaml:"token"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
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
			// Example: VAPID_TOKENTTL -> vapid.tokenTtl (not vapid.tokenttl)
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

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Dispatch.Workers <= 0 {
		cfg.Dispatch.Workers = defaultDispatchWorkers
	}
	if cfg.Dispatch.MaxAttempts <= 0 {
		cfg.Dispatch.MaxAttempts = defaultDispatchAttempts
	}
	if cfg.Dispatch.BackoffBase <= 0 {
		cfg.Dispatch.BackoffBase = defaultBackoffBase
	}
	if cfg.Dispatch.AttemptTimeout <= 0 {
		cfg.Dispatch.AttemptTimeout = defaultAttemptTimeout
	}

	if cfg.VAPID != nil {
		if cfg.VAPID.TokenTTL <= 0 || cfg.VAPID.TokenTTL > maxVAPIDTokenTTL {
			cfg.VAPID.TokenTTL = defaultVAPIDTokenTTL
		}
		if cfg.VAPID.MessageTTL <= 0 {
			cfg.VAPID.MessageTTL = defaultMessageTTL
		}
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
