package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"workday-audit/core/calendar"
	"workday-audit/core/logger"
	"workday-audit/feature/sheets"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// First describes the primary spreadsheet.
	First sheets.SourceConfig `mapstructure:"first"`
	// Second describes the spreadsheet reconciled against the first.
	Second sheets.SourceConfig `mapstructure:"second"`
	// Check holds the settings shared by all checks.
	Check CheckConfig `mapstructure:"check"`
}

// CheckConfig holds the settings shared by all checks.
type CheckConfig struct {
	// StatusAtWork is the status of records that are checked.
	StatusAtWork string `mapstructure:"status_at_work" default:"工事中"`
	// PublicHolidays is a pipe-delimited list of public holidays.
	PublicHolidays string `mapstructure:"public_holidays" default:""`
	// BusinessHolidays is a pipe-delimited list of company holidays.
	BusinessHolidays string `mapstructure:"business_holidays" default:""`
	// IgnoreKeySuffix drops records whose site key ends with it. Empty disables the filter.
	IgnoreKeySuffix string `mapstructure:"ignore_key_suffix" default:""`
	// Separators lists the characters that separate dates in a work-day cell.
	Separators string `mapstructure:"separators" default:" 、，,"`
}

// LoadConfig loads configuration from the .env file, an optional workdays.yaml
// in path, and environment variables, in increasing precedence.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// 2. Optional config file
	v.SetConfigName("workdays")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. FIRST_SHEET -> first.sheet)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configurations that cannot drive a run over both sources.
// Both sources must be keyed.
func (c *Config) Validate() error {
	if err := c.ValidateFirst(); err != nil {
		return err
	}
	if err := c.Second.Validate("second"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	// Reconciliation matches records by site key.
	for _, src := range []struct {
		name string
		cfg  sheets.SourceConfig
	}{{"first", c.First}, {"second", c.Second}} {
		if !src.cfg.Keyed() {
			return fmt.Errorf("%w: %s.site_key_column is required to reconcile both sources", ErrInvalidConfig, src.name)
		}
	}
	return nil
}

// ValidateFirst checks everything a run over the first source alone needs.
func (c *Config) ValidateFirst() error {
	if strings.TrimSpace(c.Check.StatusAtWork) == "" {
		return fmt.Errorf("%w: check.status_at_work is required", ErrInvalidConfig)
	}
	if err := c.First.Validate("first"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Holidays(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Holidays builds the union of public and business holidays.
func (c *Config) Holidays() (calendar.HolidaySet, error) {
	return calendar.ParseHolidays(c.Check.PublicHolidays, c.Check.BusinessHolidays)
}

// Separators returns each configured separator character.
func (c *Config) Separators() []string {
	var out []string
	for _, r := range c.Check.Separators {
		out = append(out, string(r))
	}
	return out
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
