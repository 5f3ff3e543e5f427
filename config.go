package blog

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// SiteConfig holds all configuration for a site build.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Blog")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	ContentDir string `mapstructure:"content_dir"` // Post source directory (default "posts")
	StaticDir  string `mapstructure:"static_dir"`  // Static assets copied verbatim (default "static")
	OutDir     string `mapstructure:"out_dir"`     // Build output directory (default "public")

	Addr  string `mapstructure:"addr"`  // Preview server listen address (default ":3000")
	Theme string `mapstructure:"theme"` // Code highlight theme (default "github")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "posts"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutDir == "" {
		c.OutDir = "public"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Theme == "" {
		c.Theme = "github"
	}
}

// LoadConfig loads site configuration. Precedence: env (BLOG_*) > config
// file > defaults. If cfgFile is empty, blog.yaml in the working directory
// is used when present; a missing config file is not an error, since every
// setting has a default.
func LoadConfig(cfgFile string) (SiteConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("BLOG")
	v.AutomaticEnv()

	// Register every key so AutomaticEnv can bind it even when the config
	// file omits it. Real defaults live in setDefaults.
	for _, key := range []string{
		"name", "url", "description", "author",
		"content_dir", "static_dir", "out_dir", "addr", "theme",
	} {
		v.SetDefault(key, "")
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("blog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return SiteConfig{}, fmt.Errorf("blog: read config: %w", err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("blog: parse config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
