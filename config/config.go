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
	defaultPath = "."

	// RemoteStoreFirebase selects the Firebase Realtime Database backend.
	RemoteStoreFirebase = "firebase"
	// RemoteStoreMemory selects the in-process store used for offline development.
	RemoteStoreMemory = "memory"

	// AuthFirebase verifies Firebase ID tokens.
	AuthFirebase = "firebase"
	// AuthLocal verifies HS256 tokens signed with auth.localSecret, for development.
	AuthLocal = "local"

	defaultRemoteStore       = RemoteStoreFirebase
	defaultAuthProvider      = AuthFirebase
	defaultAssessmentTimeout = 30 * time.Second
	defaultAdvisoryTimeout   = 15 * time.Second
	defaultGeocoderTimeout   = 5 * time.Second
	defaultGeocoderBaseURL   = "https://nominatim.openstreetmap.org"
	defaultGeocoderAgent     = "jalsetu/1.0"
	defaultFixTimeout        = 10 * time.Second
	defaultGeocodeCacheSize  = 256
	defaultStubPort          = 8000
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Firebase holds the credentials for the remote store and identity backends
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	RemoteStore *RemoteStoreConfig `json:"remoteStore" yaml:"remoteStore"`

	// Auth selects how sign-in tokens are verified
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Assessment is the feasibility-scoring backend
	Assessment *EndpointConfig `json:"assessment" yaml:"assessment"`

	// Advisory serves the crop, market, vendor and water endpoints
	Advisory *EndpointConfig `json:"advisory" yaml:"advisory"`

	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	Location *LocationConfig `json:"location" yaml:"location"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// Stub configures the local assessment stub server
	Stub *StubConfig `json:"stub" yaml:"stub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines how to reach the Firebase project
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	DatabaseURL     string `json:"databaseUrl" yaml:"databaseUrl"`
}

// RemoteStoreConfig selects the document store backend
type RemoteStoreConfig struct {
	// Provider is "firebase" or "memory"
	Provider string `json:"provider" yaml:"provider"`
}

// AuthConfig selects the identity verifier
type AuthConfig struct {
	// Provider is "firebase" or "local"
	Provider string `json:"provider" yaml:"provider"`

	// LocalSecret signs development tokens when Provider is "local"
	LocalSecret string `json:"localSecret" yaml:"localSecret"`
}

// EndpointConfig is a REST collaborator
type EndpointConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// GeocoderConfig is the Nominatim-compatible reverse geocoder
type GeocoderConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// LocationConfig bounds location acquisition
type LocationConfig struct {
	// Upper bound for the single live fix
	FixTimeout time.Duration `json:"fixTimeout" yaml:"fixTimeout"`

	// Number of geohash cells whose address is remembered
	GeocodeCacheSize int `json:"geocodeCacheSize" yaml:"geocodeCacheSize"`
}

// SessionConfig picks the product surface whose onboarding flag gates navigation
type SessionConfig struct {
	Surface string `json:"surface" yaml:"surface"`
}

// StubConfig is the local development stub server
type StubConfig struct {
	Port int `json:"port" yaml:"port"`
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

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ASSESSMENT_BASEURL -> assessment.baseUrl, aligned with the YAML keys.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never see nil.
func (c *Config) ApplyDefaults() {
	if c.RemoteStore == nil {
		c.RemoteStore = &RemoteStoreConfig{}
	}
	if strings.TrimSpace(c.RemoteStore.Provider) == "" {
		c.RemoteStore.Provider = defaultRemoteStore
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if strings.TrimSpace(c.Auth.Provider) == "" {
		c.Auth.Provider = defaultAuthProvider
	}

	if c.Assessment == nil {
		c.Assessment = &EndpointConfig{}
	}
	if c.Assessment.Timeout <= 0 {
		c.Assessment.Timeout = defaultAssessmentTimeout
	}

	if c.Advisory == nil {
		c.Advisory = &EndpointConfig{}
	}
	if c.Advisory.Timeout <= 0 {
		c.Advisory.Timeout = defaultAdvisoryTimeout
	}

	if c.Geocoder == nil {
		c.Geocoder = &GeocoderConfig{}
	}
	if c.Geocoder.BaseURL == "" {
		c.Geocoder.BaseURL = defaultGeocoderBaseURL
	}
	if c.Geocoder.Timeout <= 0 {
		c.Geocoder.Timeout = defaultGeocoderTimeout
	}
	if c.Geocoder.UserAgent == "" {
		c.Geocoder.UserAgent = defaultGeocoderAgent
	}

	if c.Location == nil {
		c.Location = &LocationConfig{}
	}
	if c.Location.FixTimeout <= 0 {
		c.Location.FixTimeout = defaultFixTimeout
	}
	if c.Location.GeocodeCacheSize <= 0 {
		c.Location.GeocodeCacheSize = defaultGeocodeCacheSize
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}

	if c.Stub == nil {
		c.Stub = &StubConfig{}
	}
	if c.Stub.Port == 0 {
		c.Stub.Port = defaultStubPort
	}
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
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
