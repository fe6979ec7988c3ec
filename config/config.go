package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	StorageBolt   = "bolt"
	StorageMemory = "memory"
)

// SysConfig system configuration
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	NodeID   int64  `yaml:"node_id"` // snowflake node, 0-1023
	Debug    bool   `yaml:"debug"`
}

// WebConfig web server configuration
type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig durable slot configuration
type StorageConfig struct {
	Type   string `yaml:"type"` // bolt or memory
	Path   string `yaml:"path"` // bolt file, relative paths resolve against workdir
	Bucket string `yaml:"bucket"`
	Key    string `yaml:"key"`
}

// LogConfig logging configuration
type LogConfig struct {
	Mode       string `yaml:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// RestaurantConfig business settings
type RestaurantConfig struct {
	TaxRate  float64 `yaml:"tax_rate"`
	Currency string  `yaml:"currency"`
}

type AppConfig struct {
	System     SysConfig        `yaml:"system"`
	Web        WebConfig        `yaml:"web"`
	Storage    StorageConfig    `yaml:"storage"`
	Logger     LogConfig        `yaml:"logger"`
	Restaurant RestaurantConfig `yaml:"restaurant"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "restodesk",
			Location: "UTC",
			Workdir:  "/var/restodesk",
			NodeID:   1,
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 1816,
		},
		Storage: StorageConfig{
			Type:   StorageBolt,
			Path:   "data/restodesk.db",
			Bucket: "restodesk",
			Key:    "restaurantData",
		},
		Logger: LogConfig{
			Mode:     "development",
			Filename: "logs/restodesk.log",
		},
		Restaurant: RestaurantConfig{
			TaxRate:  0.08,
			Currency: "USD",
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file yields the defaults.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		case os.IsNotExist(err):
		default:
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv(lookup func(string) (string, bool)) {
	setString := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	setString("RESTODESK_APPID", &c.System.Appid)
	setString("RESTODESK_LOCATION", &c.System.Location)
	setString("RESTODESK_WORKDIR", &c.System.Workdir)
	setString("RESTODESK_WEB_HOST", &c.Web.Host)
	setString("RESTODESK_STORAGE_TYPE", &c.Storage.Type)
	setString("RESTODESK_STORAGE_PATH", &c.Storage.Path)
	setString("RESTODESK_LOGGER_MODE", &c.Logger.Mode)
	setString("RESTODESK_LOGGER_FILENAME", &c.Logger.Filename)
	setString("RESTODESK_CURRENCY", &c.Restaurant.Currency)

	if v, ok := lookup("RESTODESK_DEBUG"); ok {
		c.System.Debug = cast.ToBool(v)
	}
	if v, ok := lookup("RESTODESK_NODE_ID"); ok {
		if id, err := cast.ToInt64E(v); err == nil {
			c.System.NodeID = id
		}
	}
	if v, ok := lookup("RESTODESK_WEB_PORT"); ok {
		if port := cast.ToInt(v); port > 0 {
			c.Web.Port = port
		}
	}
	if v, ok := lookup("RESTODESK_LOGGER_FILE_ENABLE"); ok {
		c.Logger.FileEnable = cast.ToBool(v)
	}
	if v, ok := lookup("RESTODESK_TAX_RATE"); ok {
		if rate, err := cast.ToFloat64E(v); err == nil {
			c.Restaurant.TaxRate = rate
		}
	}
}

// Validate checks the configuration for values the application cannot run with.
func (c *AppConfig) Validate() error {
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return errors.Errorf("web.port %d out of range", c.Web.Port)
	}
	if c.System.NodeID < 0 || c.System.NodeID > 1023 {
		return errors.Errorf("system.node_id %d out of range 0-1023", c.System.NodeID)
	}
	switch strings.ToLower(c.Storage.Type) {
	case StorageBolt:
		if c.Storage.Path == "" {
			return errors.New("storage.path is required for bolt storage")
		}
	case StorageMemory:
	default:
		return errors.Errorf("unknown storage.type %q", c.Storage.Type)
	}
	if c.Restaurant.TaxRate < 0 || c.Restaurant.TaxRate >= 1 {
		return errors.Errorf("restaurant.tax_rate %v must be in [0, 1)", c.Restaurant.TaxRate)
	}
	if c.Logger.FileEnable && c.Logger.Filename == "" {
		return errors.New("logger.filename is required when file_enable is set")
	}
	return nil
}

// GetStoragePath returns the bolt file path, resolved against the workdir.
func (c *AppConfig) GetStoragePath() string {
	return c.resolve(c.Storage.Path)
}

// GetLogFilename returns the log file path, resolved against the workdir.
func (c *AppConfig) GetLogFilename() string {
	return c.resolve(c.Logger.Filename)
}

func (c *AppConfig) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.System.Workdir, p)
}
