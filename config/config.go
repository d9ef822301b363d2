package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StorageDriverSQLite = "sqlite"
	StorageDriverMySQL  = "mysql"
)

type Config struct {
	TMDB    TMDB    `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	OMDb    OMDb    `json:"omdb" yaml:"omdb" mapstructure:"omdb"`
	Ombi    Ombi    `json:"ombi" yaml:"ombi" mapstructure:"ombi"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Manager Manager `json:"manager" yaml:"manager" mapstructure:"manager"`
	Log     Log     `json:"log" yaml:"log" mapstructure:"log"`
}

type TMDB struct {
	URI         string        `json:"uri" yaml:"uri" mapstructure:"uri" validate:"omitempty,url"`
	ImageURI    string        `json:"imageURI" yaml:"imageURI" mapstructure:"imageURI" validate:"omitempty,url"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
}

// OMDb is the ratings provider. Critic scores are skipped when APIKey is empty.
type OMDb struct {
	URI    string `json:"uri" yaml:"uri" mapstructure:"uri" validate:"omitempty,url"`
	APIKey string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
}

type Ombi struct {
	URI             string `json:"uri" yaml:"uri" mapstructure:"uri" validate:"omitempty,url"`
	APIKey          string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	RequestOnBehalf string `json:"requestOnBehalf" yaml:"requestOnBehalf" mapstructure:"requestOnBehalf"`
}

// Storage selects the database backend. Migrations only provision the default table names,
// custom names are expected to already exist.
type Storage struct {
	Driver      string `json:"driver" yaml:"driver" mapstructure:"driver" validate:"omitempty,oneof=sqlite mysql"`
	FilePath    string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
	DSN         string `json:"dsn" yaml:"dsn" mapstructure:"dsn" validate:"required_if=Driver mysql"`
	MovieTable  string `json:"movieTable" yaml:"movieTable" mapstructure:"movieTable" validate:"omitempty,identifier"`
	SeriesTable string `json:"seriesTable" yaml:"seriesTable" mapstructure:"seriesTable" validate:"omitempty,identifier"`
}

type Server struct {
	Port       int    `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
	SessionKey string `json:"sessionKey" yaml:"sessionKey" mapstructure:"sessionKey"`
}

// Manager houses configuration related to the manager and its background jobs
type Manager struct {
	AvailabilityConcurrency int  `json:"availabilityConcurrency" yaml:"availabilityConcurrency" mapstructure:"availabilityConcurrency" validate:"gte=0"`
	Jobs                    Jobs `json:"jobs" yaml:"jobs" mapstructure:"jobs"`
}

type Jobs struct {
	BackdropRefresh time.Duration `json:"backdropRefresh" yaml:"backdropRefresh" mapstructure:"backdropRefresh"`
}

type Log struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
	JSON  bool   `json:"json" yaml:"json" mapstructure:"json"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the configuration for values that would only fail later at runtime
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return identifierPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		return err
	}

	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
