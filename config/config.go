package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
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
	defaultProvisionTimeout   = 30 * time.Second
	defaultFanOutLimit        = 8
	defaultTokenTTL           = time.Hour
	defaultBcryptCost         = 10

	// EnvDevelop is the environment name that enables .env loading.
	EnvDevelop = "develop"

	// StorageDriverPostgres selects the GORM/PostgreSQL persistence layer.
	StorageDriverPostgres = "postgres"
	// StorageDriverMemory selects the in-memory transactional store.
	StorageDriverMemory = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS CORSConfig `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	CredentialPolicy *CredentialPolicyConfig `json:"credentialPolicy" yaml:"credentialPolicy"`

	// PubSub configuration for account lifecycle events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins  []string `json:"allowedOrigins" yaml:"allowedOrigins"`
	AllowedSuffixes []string `json:"allowedSuffixes" yaml:"allowedSuffixes"`
}

// StorageConfig selects and tunes the persistence backend.
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`

	// CatalogPath is the yaml seed catalog used by the memory driver and by `gardenctl catalog load`.
	CatalogPath string `json:"catalogPath" yaml:"catalogPath"`

	// ProvisionTimeout bounds a registration scope once it has been detached from the request.
	ProvisionTimeout time.Duration `json:"provisionTimeout" yaml:"provisionTimeout"`

	// FanOutLimit bounds concurrent category-document inserts.
	FanOutLimit int `json:"fanOutLimit" yaml:"fanOutLimit"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// CredentialPolicyConfig defines the username and password format rules
type CredentialPolicyConfig struct {
	UsernameMinLength int  `json:"usernameMinLength" yaml:"usernameMinLength"`
	UsernameMaxLength int  `json:"usernameMaxLength" yaml:"usernameMaxLength"`
	PasswordMinLength int  `json:"passwordMinLength" yaml:"passwordMinLength"`
	PasswordMaxLength int  `json:"passwordMaxLength" yaml:"passwordMaxLength"`
	RequireLetter     bool `json:"requireLetter" yaml:"requireLetter"`
	RequireNumber     bool `json:"requireNumber" yaml:"requireNumber"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected in push OIDC tokens received by the audit worker
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SECRETKEY_ACCESS -> secretKey.access, aligned with the yaml casing.
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads, defaults and validates the service configuration.
func New() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and defaults the configuration without validating it.
// Operator commands use it since they need only part of the config.
func Load() (*Config, error) {
	loadDotEnv()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// loadDotEnv loads a local .env file before koanf reads the environment.
// Only the develop environment does this; deployed processes get real env vars.
func loadDotEnv() {
	if !strings.EqualFold(os.Getenv("ENV_ENV"), EnvDevelop) {
		return
	}

	_ = godotenv.Load()
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}
	if cfg.Storage.ProvisionTimeout <= 0 {
		cfg.Storage.ProvisionTimeout = defaultProvisionTimeout
	}
	if cfg.Storage.FanOutLimit <= 0 {
		cfg.Storage.FanOutLimit = defaultFanOutLimit
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.CredentialPolicy == nil {
		cfg.CredentialPolicy = DefaultCredentialPolicy()
	}
}

// DefaultCredentialPolicy returns the policy used when none is configured.
func DefaultCredentialPolicy() *CredentialPolicyConfig {
	return &CredentialPolicyConfig{
		UsernameMinLength: 3,
		UsernameMaxLength: 32,
		PasswordMinLength: 8,
		PasswordMaxLength: 72,
		RequireLetter:     true,
		RequireNumber:     true,
	}
}

// Validate reports configuration that must stop the process from starting.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.New("secretKey.access (SECRETKEY_ACCESS) is required")
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres connection is required when storage.driver is postgres")
		}
	case StorageDriverMemory:
		if strings.TrimSpace(cfg.Storage.CatalogPath) == "" {
			return errors.New("storage.catalogPath is required when storage.driver is memory")
		}
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	return nil
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
