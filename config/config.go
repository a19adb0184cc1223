package config

import (
	"os"
	"path/filepath"
	"strconv"
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
	defaultMaxRequestBodySize = "12MB"

	defaultRetryAttempts   = 3
	defaultAttemptTimeout  = 30 * time.Second
	defaultRetryBackoff    = 2 * time.Second
	defaultHealthTimeout   = 5 * time.Second
	defaultProcessTimeout  = 60 * time.Second
	defaultTesseractBinary = "tesseract"
	defaultTesseractLang   = "por"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// QRCode configuration for redemption pickup QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for loyalty event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Vision configuration for invoice extraction providers
	Vision *VisionConfig `json:"vision" yaml:"vision"`

	// Storage configuration for the invoice image archive
	Storage *StorageConfig `json:"storage" yaml:"storage"`
}

// SecretKeyConfig holds the JWT signing secrets
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
	AccessTTL         time.Duration `json:"accessTtl" yaml:"accessTtl"`
	RefreshTTL        time.Duration `json:"refreshTtl" yaml:"refreshTtl"`

	// AdminEmails are granted the admin role when they register
	AdminEmails []string `json:"adminEmails" yaml:"adminEmails"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig selects where loyalty events go. An empty provider disables publishing.
type PubSubConfig struct {
	Provider      string `json:"provider" yaml:"provider"` // "local" or "google"
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"` // push endpoint for "local"
}

// VisionConfig defines the invoice extraction providers
type VisionConfig struct {
	// DefaultProvider is used when a request does not name one
	DefaultProvider string `json:"defaultProvider" yaml:"defaultProvider"`

	Gemini     LLMProviderConfig `json:"gemini" yaml:"gemini"`
	OpenAI     LLMProviderConfig `json:"openai" yaml:"openai"`
	Anthropic  LLMProviderConfig `json:"anthropic" yaml:"anthropic"`
	OCRService OCRServiceConfig  `json:"ocrService" yaml:"ocrService"`
	Tesseract  TesseractConfig   `json:"tesseract" yaml:"tesseract"`
	Retry      RetryConfig       `json:"retry" yaml:"retry"`
}

// LLMProviderConfig configures one hosted model provider
type LLMProviderConfig struct {
	APIKey    string `json:"apiKey" yaml:"apiKey"`
	Model     string `json:"model" yaml:"model"`
	BaseURL   string `json:"baseUrl" yaml:"baseUrl"`
	MaxTokens int    `json:"maxTokens" yaml:"maxTokens"`
}

// OCRServiceConfig configures the self-hosted OCR microservice
type OCRServiceConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	HealthTimeout  time.Duration `json:"healthTimeout" yaml:"healthTimeout"`
	ProcessTimeout time.Duration `json:"processTimeout" yaml:"processTimeout"`
}

// TesseractConfig configures the local tesseract fallback
type TesseractConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Binary   string `json:"binary" yaml:"binary"`
	Language string `json:"language" yaml:"language"`
}

// RetryConfig configures the bounded retry wrapper around selected providers
type RetryConfig struct {
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	AttemptTimeout time.Duration `json:"attemptTimeout" yaml:"attemptTimeout"`
	Backoff        time.Duration `json:"backoff" yaml:"backoff"`
	Providers      []string      `json:"providers" yaml:"providers"`
}

// StorageConfig defines the invoice image archive bucket
type StorageConfig struct {
	// BucketURL is a gocloud.dev/blob URL, e.g. file:///var/lib/clubefast or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// configFileEnv points at an explicit config file and skips the search path.
const configFileEnv = "CLUBEFAST_CONFIG"

// LoadWithEnv reads <name>.yaml from the first search path that has it, then
// overlays environment variables (VISION_GEMINI_APIKEY -> vision.gemini.apiKey).
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	configFile, err := findConfigFile(name, configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", configFile)
	}

	yamlKeys := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, yamlKeys), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", configFile)
	}

	return cfg, nil
}

func findConfigFile(name string, configPath []string) (string, error) {
	if explicit := os.Getenv(configFileEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "%s=%s", configFileEnv, explicit)
		}

		return explicit, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	searchPaths := []string{defaultPath}
	for _, path := range configPath {
		searchPaths = append(searchPaths, filepath.Join(pwd, path))
	}

	for _, dir := range searchPaths {
		candidate := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in %v", name, searchPaths)
}

// decoderConfig matches keys case-insensitively so env overrides land on camelCase fields.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		MatchName: strings.EqualFold,
	}
}

// New loads config.yaml (after .env, when present), applies defaults and validates the result.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations the server cannot run with.
func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return errors.Errorf("http.port %d out of range", c.HTTP.Port)
	}
	if c.SecretKey.Access == "" || c.SecretKey.Refresh == "" {
		return errors.New("secretKey.access and secretKey.refresh are required")
	}
	if c.SecretKey.Access == c.SecretKey.Refresh {
		return errors.New("secretKey.access and secretKey.refresh must differ")
	}
	if c.Auth != nil && c.Auth.BcryptCost != 0 && (c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31) {
		return errors.Errorf("auth.bcryptCost %d must be between 4 and 31", c.Auth.BcryptCost)
	}

	return nil
}

// applyDefaults fills values that have a fallback when absent from YAML and env.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Vision == nil {
		cfg.Vision = &VisionConfig{}
	}

	retry := &cfg.Vision.Retry
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = defaultRetryAttempts
	}
	if retry.AttemptTimeout <= 0 {
		retry.AttemptTimeout = defaultAttemptTimeout
	}
	if retry.Backoff <= 0 {
		retry.Backoff = defaultRetryBackoff
	}

	ocr := &cfg.Vision.OCRService
	if ocr.HealthTimeout <= 0 {
		ocr.HealthTimeout = defaultHealthTimeout
	}
	if ocr.ProcessTimeout <= 0 {
		ocr.ProcessTimeout = defaultProcessTimeout
	}

	if cfg.Vision.Tesseract.Binary == "" {
		cfg.Vision.Tesseract.Binary = defaultTesseractBinary
	}
	if cfg.Vision.Tesseract.Language == "" {
		cfg.Vision.Tesseract.Language = defaultTesseractLang
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

// replicasFromEnv reads read replicas from POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD},
// stopping at the first index without a host and port.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, port := os.Getenv(prefix+"HOST"), os.Getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}
}
