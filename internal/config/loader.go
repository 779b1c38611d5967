// Package config loads the grievance classifier configuration from YAML
// with environment variable overrides.
//
// Values resolve in three layers, later layers winning: the YAML file,
// defaults for anything the file left unset, then environment variables
// named by `env` struct tags. Before overrides are read, .env files are
// loaded into the process environment: the file named by ENV_FILE when
// that variable is set, otherwise .env.local and then .env, with
// .env.local taking precedence. Missing files are fine.
//
// A field opts into overriding with a tag:
//
//	type ServiceConfig struct {
//	    Port int `yaml:"port" env:"GRIEVANCE_PORT"`
//	}
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var durationType = reflect.TypeOf(time.Duration(0))

// LoadFile reads a YAML file into T and applies environment overrides.
func LoadFile[T any](path string) (*T, error) {
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg T
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadFileWithDefaults is LoadFile with a defaults pass in the middle.
// Environment overrides are applied again after the defaults so an
// explicit variable always beats a default.
func LoadFileWithDefaults[T any](path string, setDefaults func(*T)) (*T, error) {
	cfg, err := LoadFile[T](path)
	if err != nil {
		return nil, err
	}

	if setDefaults != nil {
		setDefaults(cfg)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// GetConfigPath returns CONFIG_PATH from the environment, or defaultPath
// when it is unset.
func GetConfigPath(defaultPath string) string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultPath
}

// loadDotEnv populates the process environment from .env files. Only
// read errors are reported; absent files are skipped.
func loadDotEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	// .env.local wins because godotenv never overwrites a variable that
	// is already set.
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// applyEnvOverrides walks cfg and overwrites tagged fields from the
// environment.
func applyEnvOverrides(cfg any) {
	root := reflect.ValueOf(cfg)
	if root.Kind() == reflect.Ptr {
		root = root.Elem()
	}
	overrideStruct(root)
}

func overrideStruct(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		return
	}

	structType := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		// Nested structs carry their own tags.
		if field.Kind() == reflect.Struct {
			overrideStruct(field)
			continue
		}
		if field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct {
			if field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			overrideStruct(field.Elem())
			continue
		}

		name := structType.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		if value := os.Getenv(name); value != "" {
			setFromEnv(field, value)
		}
	}
}

// setFromEnv converts value to the field's type. Unparseable values
// leave the field as it was.
func setFromEnv(field reflect.Value, value string) {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == durationType {
			if d, err := time.ParseDuration(value); err == nil {
				field.SetInt(int64(d))
			}
			return
		}
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			field.SetInt(n)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseUint(value, 10, 64); err == nil {
			field.SetUint(n)
		}

	case reflect.Float32, reflect.Float64:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			field.SetFloat(f)
		}

	case reflect.Bool:
		field.SetBool(isTruthy(value))

	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			field.Set(reflect.ValueOf(parts))
		}
	}
}

// isTruthy accepts "true", "1" and "yes" in any case.
func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
