package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath         = "."
	defaultDocumentPath = "database.json"
	defaultObjectName   = "workforce_database.json"
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

	// Document configures the on-disk JSON document store.
	Document struct {
		Path string `json:"path" yaml:"path"`
	} `json:"document" yaml:"document"`

	// Admin identifies the fixed super administrator. The super admin is
	// configured here, never stored as a grant.
	Admin struct {
		SuperAdminID string `json:"superAdminId" yaml:"superAdminId"`
		Username     string `json:"username" yaml:"username"`
	} `json:"admin" yaml:"admin"`

	// Deployment carries the externally visible URL this instance runs
	// under; its short name keys the remote backup folder.
	Deployment struct {
		ExternalURL string `json:"externalUrl" yaml:"externalUrl"`
	} `json:"deployment" yaml:"deployment"`

	Backup *BackupConfig `json:"backup" yaml:"backup"`

	// Storage selects the remote object-storage backend for backups.
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for lifecycle event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackupConfig defines the backup schedule.
type BackupConfig struct {
	Enabled      bool          `json:"enabled" yaml:"enabled"`
	Interval     time.Duration `json:"interval" yaml:"interval"`
	InitialDelay time.Duration `json:"initialDelay" yaml:"initialDelay"`
	ObjectName   string        `json:"objectName" yaml:"objectName"`
}

// StorageConfig selects and configures the object-storage provider.
type StorageConfig struct {
	// Provider type: "bucket" for a gocloud.dev blob bucket URL or
	// "dropbox" for the Dropbox HTTP API
	Provider string `json:"provider" yaml:"provider"`

	// Bucket URL understood by gocloud.dev, e.g. "file:///var/backups",
	// "gs://my-bucket" or "s3://my-bucket" (for bucket provider)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Dropbox app credentials and the long-lived refresh token
	// (for dropbox provider)
	Dropbox *DropboxConfig `json:"dropbox" yaml:"dropbox"`
}

// DropboxConfig holds the refresh-token credentials for the Dropbox backend.
// No long-lived access token is ever kept on disk; short-lived tokens are
// exchanged at runtime.
type DropboxConfig struct {
	AppKey       string `json:"appKey" yaml:"appKey"`
	AppSecret    string `json:"appSecret" yaml:"appSecret"`
	RefreshToken string `json:"refreshToken" yaml:"refreshToken"`

	// Endpoint overrides for tests; production uses the Dropbox defaults.
	TokenURL   string `json:"tokenUrl" yaml:"tokenUrl"`
	APIURL     string `json:"apiUrl" yaml:"apiUrl"`
	ContentURL string `json:"contentUrl" yaml:"contentUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
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

// ShortDomain derives a stable short identifier for this deployment from the
// external URL, so multiple deployments never collide on the same remote
// backup path. Falls back to "local".
func (c *Config) ShortDomain() string {
	domain := strings.TrimSpace(c.Deployment.ExternalURL)
	if domain == "" {
		return "local"
	}

	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimSuffix(domain, "/")
	domain = strings.TrimSuffix(domain, ".render.com")
	domain = strings.TrimSuffix(domain, ".onrender.com")
	if idx := strings.IndexByte(domain, '.'); idx >= 0 {
		domain = domain[:idx]
	}
	if idx := strings.IndexByte(domain, ':'); idx >= 0 {
		domain = domain[:idx]
	}

	if domain == "" {
		return "local"
	}

	return domain
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
			// Example: STORAGE_BUCKETURL -> storage.bucketUrl (not storage.bucketurl)
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

	if strings.TrimSpace(cfg.Document.Path) == "" {
		cfg.Document.Path = defaultDocumentPath
	}
	if cfg.Backup == nil {
		cfg.Backup = &BackupConfig{}
	}
	if cfg.Backup.Interval <= 0 {
		cfg.Backup.Interval = time.Hour
	}
	if cfg.Backup.InitialDelay <= 0 {
		cfg.Backup.InitialDelay = 2 * time.Minute
	}
	if strings.TrimSpace(cfg.Backup.ObjectName) == "" {
		cfg.Backup.ObjectName = defaultObjectName
	}

	return cfg, nil
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
