package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	"github.com/gamefeed/gamefeed/shared/domain"
)

const (
	defaultFeedbackResetDelay   = 5 * time.Second
	defaultMaxPhotoSize         = 5 << 20
	defaultSessionTTL           = 24 * time.Hour
	defaultSessionSweepInterval = time.Minute
	defaultAPITimeout           = 10 * time.Second
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	APIBaseURL            string        `yaml:"api_base_url" validate:"required,url"`
	APITimeout            time.Duration `yaml:"api_timeout"`
	Games                 []string      `yaml:"games" validate:"required,min=1,dive,required"` // fallback list when the API has no games
	FeedbackResetDelay    time.Duration `yaml:"feedback_reset_delay"`                          // how long success/error feedback stays on the form
	MaxPhotoSize          int64         `yaml:"max_photo_size"`
	AllowedPhotoMimeTypes []string      `yaml:"allowed_photo_mime_types"`
	SessionTTL            time.Duration `yaml:"session_ttl"`
	SessionSweepInterval  time.Duration `yaml:"session_sweep_interval"`
	SecureCookies         bool          `yaml:"secure_cookies"`
	AllowedOrigins        []string      `yaml:"allowed_origins"`
	LogLevel              string        `yaml:"log_level"`
	LogJSON               bool          `yaml:"log_json"`
	Redis                 Redis         `yaml:"redis"`
}

// Redis is optional; an empty Addr keeps sessions in memory only.
type Redis struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
}

type Private struct {
	RedisPassword string `yaml:"redis_password"`
}

// applyDefaults fills optional fields left empty in public.yaml.
func (p *Public) applyDefaults() {
	if p.FeedbackResetDelay <= 0 {
		p.FeedbackResetDelay = defaultFeedbackResetDelay
	}
	if p.MaxPhotoSize <= 0 {
		p.MaxPhotoSize = defaultMaxPhotoSize
	}
	if len(p.AllowedPhotoMimeTypes) == 0 {
		p.AllowedPhotoMimeTypes = append([]string(nil), domain.PhotoMimeTypes...)
	}
	if p.SessionTTL <= 0 {
		p.SessionTTL = defaultSessionTTL
	}
	if p.SessionSweepInterval <= 0 {
		p.SessionSweepInterval = defaultSessionSweepInterval
	}
	if p.APITimeout <= 0 {
		p.APITimeout = defaultAPITimeout
	}
	if p.LogLevel == "" {
		p.LogLevel = "info"
	}
}

// mustLoadPath reads one yaml file into output, panicking on any error.
func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Validation runs before defaults so required fields cannot be defaulted away.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(public); err != nil {
		panic(fmt.Sprintf("invalid public config: %v", err))
	}
	public.applyDefaults()

	return &Config{Public: public, Private: private}
}
