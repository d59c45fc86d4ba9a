package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// CatalogEndpoint describes where one service category lives upstream.
type CatalogEndpoint struct {
	ReadURL    string
	QueryField string
	IDField    string
	CreateURL  string
	UpdateURL  string
	DeleteURL  string
}

// Operator is a login identity accepted by the auth service.
type Operator struct {
	Email        string `mapstructure:"email"`
	PasswordHash string `mapstructure:"password_hash"`
	Role         string `mapstructure:"role"`
}

// PlaceholderUser is shown when the user directory cannot be reached.
type PlaceholderUser struct {
	ID    string `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// Config holds all configuration values.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	DefaultLocale     string        `mapstructure:"DEFAULT_LOCALE"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`

	// Outbound HTTP.
	HTTPClientTimeout time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`

	// Catering catalog.
	CateringReadURL    string `mapstructure:"CATERING_READ_URL"`
	CateringQueryField string `mapstructure:"CATERING_QUERY_FIELD"`
	CateringIDField    string `mapstructure:"CATERING_ID_FIELD"`
	CateringCreateURL  string `mapstructure:"CATERING_CREATE_URL"`
	CateringUpdateURL  string `mapstructure:"CATERING_UPDATE_URL"`
	CateringDeleteURL  string `mapstructure:"CATERING_DELETE_URL"`

	// Music catalog.
	MusicReadURL    string `mapstructure:"MUSIC_READ_URL"`
	MusicQueryField string `mapstructure:"MUSIC_QUERY_FIELD"`
	MusicIDField    string `mapstructure:"MUSIC_ID_FIELD"`
	MusicCreateURL  string `mapstructure:"MUSIC_CREATE_URL"`
	MusicUpdateURL  string `mapstructure:"MUSIC_UPDATE_URL"`
	MusicDeleteURL  string `mapstructure:"MUSIC_DELETE_URL"`

	// Decoration catalog.
	DecorationReadURL    string `mapstructure:"DECORATION_READ_URL"`
	DecorationQueryField string `mapstructure:"DECORATION_QUERY_FIELD"`
	DecorationIDField    string `mapstructure:"DECORATION_ID_FIELD"`
	DecorationCreateURL  string `mapstructure:"DECORATION_CREATE_URL"`
	DecorationUpdateURL  string `mapstructure:"DECORATION_UPDATE_URL"`
	DecorationDeleteURL  string `mapstructure:"DECORATION_DELETE_URL"`

	// Photography catalog.
	PhotographyReadURL    string `mapstructure:"PHOTOGRAPHY_READ_URL"`
	PhotographyQueryField string `mapstructure:"PHOTOGRAPHY_QUERY_FIELD"`
	PhotographyIDField    string `mapstructure:"PHOTOGRAPHY_ID_FIELD"`
	PhotographyCreateURL  string `mapstructure:"PHOTOGRAPHY_CREATE_URL"`
	PhotographyUpdateURL  string `mapstructure:"PHOTOGRAPHY_UPDATE_URL"`
	PhotographyDeleteURL  string `mapstructure:"PHOTOGRAPHY_DELETE_URL"`

	CatalogReadRetries    int           `mapstructure:"CATALOG_READ_RETRIES"`
	CatalogReadRetryDelay time.Duration `mapstructure:"CATALOG_READ_RETRY_DELAY"`

	// User directory.
	UserDirectoryURL        string            `mapstructure:"USER_DIRECTORY_URL"`
	UserDirectoryRetries    int               `mapstructure:"USER_DIRECTORY_RETRIES"`
	UserDirectoryRetryDelay time.Duration     `mapstructure:"USER_DIRECTORY_RETRY_DELAY"`
	PlaceholderUsers        []PlaceholderUser `mapstructure:"PLACEHOLDER_USERS"`

	// Locations.
	LocationsReadURL  string `mapstructure:"LOCATIONS_READ_URL"`
	LocationsWriteURL string `mapstructure:"LOCATIONS_WRITE_URL"`

	// Checkout.
	SessionStore   string        `mapstructure:"SESSION_STORE"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
	RedirectDelay  time.Duration `mapstructure:"REDIRECT_DELAY"`
	SubmitPolicy   string        `mapstructure:"SUBMIT_POLICY"`
	BookingBackend string        `mapstructure:"BOOKING_BACKEND"`
	BookingURL     string        `mapstructure:"BOOKING_URL"`

	// MongoDB, used by the "mongo" booking backend.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisTaskDB   int    `mapstructure:"REDIS_TASK_DB"`
	TasksEnabled  bool   `mapstructure:"TASKS_ENABLED"`

	Operators []Operator `mapstructure:"OPERATORS"`
}

var AppConfig Config

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_LOCALE", "es")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", 12*time.Hour)
	v.SetDefault("HTTP_CLIENT_TIMEOUT", 10*time.Second)

	v.SetDefault("CATERING_READ_URL", "http://localhost:8072/graphql")
	v.SetDefault("CATERING_QUERY_FIELD", "getAllCatering")
	v.SetDefault("CATERING_ID_FIELD", "id_catering")
	v.SetDefault("CATERING_CREATE_URL", "http://localhost:8071/cateringC/create")
	v.SetDefault("CATERING_UPDATE_URL", "http://localhost:8073/cateringU/update")
	v.SetDefault("CATERING_DELETE_URL", "http://localhost:8074/cateringD/delete")

	v.SetDefault("MUSIC_READ_URL", "http://localhost:8062/graphql")
	v.SetDefault("MUSIC_QUERY_FIELD", "getAllMusic")
	v.SetDefault("MUSIC_ID_FIELD", "id_music")
	v.SetDefault("MUSIC_CREATE_URL", "http://localhost:8061/musicC/create")
	v.SetDefault("MUSIC_UPDATE_URL", "http://localhost:8063/musicU/update")
	v.SetDefault("MUSIC_DELETE_URL", "http://localhost:8064/musicD/delete")

	v.SetDefault("DECORATION_READ_URL", "http://localhost:8042/graphql")
	v.SetDefault("DECORATION_QUERY_FIELD", "getAllDecoration")
	v.SetDefault("DECORATION_ID_FIELD", "id_decoration")
	v.SetDefault("DECORATION_CREATE_URL", "http://localhost:8041/decorationC/create")
	v.SetDefault("DECORATION_UPDATE_URL", "http://localhost:8043/decorationU/update")
	v.SetDefault("DECORATION_DELETE_URL", "http://localhost:8044/decorationD/delete")

	// The photography service really spells its id field this way.
	v.SetDefault("PHOTOGRAPHY_READ_URL", "http://localhost:8052/graphql")
	v.SetDefault("PHOTOGRAPHY_QUERY_FIELD", "getAllPhotography")
	v.SetDefault("PHOTOGRAPHY_ID_FIELD", "id_photograhy")
	v.SetDefault("PHOTOGRAPHY_CREATE_URL", "http://localhost:8051/photographyC/create")
	v.SetDefault("PHOTOGRAPHY_UPDATE_URL", "http://localhost:8053/photographyU/update")
	v.SetDefault("PHOTOGRAPHY_DELETE_URL", "http://localhost:8054/photographyD/delete")

	v.SetDefault("CATALOG_READ_RETRIES", 0)
	v.SetDefault("CATALOG_READ_RETRY_DELAY", 2*time.Second)

	v.SetDefault("USER_DIRECTORY_URL", "http://localhost:3001/api")
	v.SetDefault("USER_DIRECTORY_RETRIES", 2)
	v.SetDefault("USER_DIRECTORY_RETRY_DELAY", 2*time.Second)

	v.SetDefault("LOCATIONS_READ_URL", "http://localhost:4002/graphql")
	v.SetDefault("LOCATIONS_WRITE_URL", "http://localhost:4003/graphql")

	v.SetDefault("SESSION_STORE", "redis")
	v.SetDefault("SESSION_TTL", 30*time.Minute)
	v.SetDefault("REDIRECT_DELAY", 5*time.Second)
	v.SetDefault("SUBMIT_POLICY", "confirm_always")
	v.SetDefault("BOOKING_BACKEND", "none")
	v.SetDefault("BOOKING_URL", "")

	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "weddingplanner")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_TASK_DB", 3)
	v.SetDefault("TASKS_ENABLED", false)
}

// Load reads configuration from v into a Config.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.DefaultLocale = strings.ToLower(cfg.DefaultLocale)
	return cfg, nil
}

func LoadConfig() {
	v := viper.GetViper()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Catalog returns the upstream endpoints for a service category.
// The second result is false for unknown categories.
func (c Config) Catalog(category string) (CatalogEndpoint, bool) {
	switch category {
	case "catering":
		return CatalogEndpoint{c.CateringReadURL, c.CateringQueryField, c.CateringIDField, c.CateringCreateURL, c.CateringUpdateURL, c.CateringDeleteURL}, true
	case "music":
		return CatalogEndpoint{c.MusicReadURL, c.MusicQueryField, c.MusicIDField, c.MusicCreateURL, c.MusicUpdateURL, c.MusicDeleteURL}, true
	case "decoration":
		return CatalogEndpoint{c.DecorationReadURL, c.DecorationQueryField, c.DecorationIDField, c.DecorationCreateURL, c.DecorationUpdateURL, c.DecorationDeleteURL}, true
	case "photography":
		return CatalogEndpoint{c.PhotographyReadURL, c.PhotographyQueryField, c.PhotographyIDField, c.PhotographyCreateURL, c.PhotographyUpdateURL, c.PhotographyDeleteURL}, true
	}
	return CatalogEndpoint{}, false
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
