// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-subedict"
)

// Config is the root application configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// DictionaryConfig holds the dictionary file settings.
type DictionaryConfig struct {
	Rules    string `yaml:"rules"    env:"SUBEDICT_RULES"`
	Dict     string `yaml:"dict"     env:"SUBEDICT_DICT"`
	Names    string `yaml:"names"    env:"SUBEDICT_NAMES"`
	Encoding string `yaml:"encoding" env:"SUBEDICT_ENCODING" env-default:"utf-8"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SUBEDICT_ADDR"             env-default:":8080"`
	CacheSize       int           `yaml:"cache_size"       env:"SUBEDICT_CACHE_SIZE"       env-default:"1024"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SUBEDICT_MAX_BODY_BYTES"   env-default:"1048576"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SUBEDICT_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SUBEDICT_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SUBEDICT_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SUBEDICT_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// Origins returns the list of allowed origins.
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// LoadConfig reads configuration from an optional YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if c.Dictionary.Rules == "" {
		errs = append(errs, errors.New("dictionary.rules is required"))
	}
	if c.Dictionary.Dict == "" {
		errs = append(errs, errors.New("dictionary.dict is required"))
	}
	if err := subedict.CheckEncoding(c.Dictionary.Encoding); err != nil {
		errs = append(errs, fmt.Errorf("dictionary.encoding: %w", err))
	}
	if c.Server.CacheSize < 0 {
		errs = append(errs, errors.New("server.cache_size must not be negative"))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("server.max_body_bytes must be positive"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// applyFlags overrides the configuration with flags given on the command
// line.
func (c *Config) applyFlags(ctx *cli.Context) {
	override := func(dst *string, name string) {
		if ctx.IsSet(name) {
			*dst = ctx.String(name)
		}
	}
	override(&c.Dictionary.Rules, "rules")
	override(&c.Dictionary.Dict, "dict")
	override(&c.Dictionary.Names, "names")
	override(&c.Dictionary.Encoding, "encoding")
	override(&c.Log.Level, "log-level")
	override(&c.Log.Format, "log-format")
	override(&c.Server.Addr, "addr")
	if ctx.IsSet("cache-size") {
		c.Server.CacheSize = ctx.Int("cache-size")
	}
}

// Dictionary file names searched for in the data locations.
var (
	rulesFiles = []string{"deinflect.dat", "deinflect.dat.gz"}
	dictFiles  = []string{"edict2", "edict2.gz", "edict2.dz", "edict", "edict.gz"}
)

// setDefaults fills in missing file paths with files found in dirs.
func (c *DictionaryConfig) setDefaults(dirs []string) {
	if c.Rules == "" {
		c.Rules = findFile(dirs, rulesFiles)
	}
	if c.Dict == "" {
		c.Dict = findFile(dirs, dictFiles)
	}
}

// Options returns the options for opening the dictionary files.
func (c *DictionaryConfig) Options() *subedict.Options {
	return &subedict.Options{
		RulesPath: c.Rules,
		DictPath:  c.Dict,
		NamesPath: c.Names,
		Encoding:  c.Encoding,
	}
}

// findFile returns the first of names that exists in dirs.
func findFile(dirs, names []string) string {
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
				return path
			}
		}
	}
	return ""
}
