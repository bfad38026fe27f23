// Package config loads environment configuration for DeskRemote.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultHost           = "0.0.0.0"
	defaultPort           = 80
	defaultDataDir        = "./data"
	defaultAPIKey         = "2907"
	defaultAPIKeyHeader   = "X-API-Key"
	defaultCameraURI      = "microsoft.windows.camera:"
	defaultCameraPath     = `C:\Windows\System32\Camera.exe`
	defaultBSODCommand    = "bsod"
	defaultOutcomeHistory = 100
)

// Config holds runtime configuration values. It is built once by Load and
// passed by value afterwards.
type Config struct {
	ListenAddr     string
	DataDir        string
	Debug          bool
	APIKeyEnabled  bool
	APIKey         string
	APIKeyHeader   string
	CameraURI      string
	CameraPath     string
	BSODCommand    string
	OutcomeHistory int
	OutcomeDB      string
	SitesFile      string
	sites          map[string]string
}

// DefaultSites returns the built-in site table.
func DefaultSites() map[string]string {
	return map[string]string{
		"youtube": "https://www.youtube.com",
		"spotify": "https://open.spotify.com",
	}
}

// Default returns a configuration populated with defaults only.
func Default() Config {
	return Config{
		ListenAddr:     net.JoinHostPort(defaultHost, strconv.Itoa(defaultPort)),
		DataDir:        defaultDataDir,
		APIKey:         defaultAPIKey,
		APIKeyHeader:   defaultAPIKeyHeader,
		CameraURI:      defaultCameraURI,
		CameraPath:     defaultCameraPath,
		BSODCommand:    defaultBSODCommand,
		OutcomeHistory: defaultOutcomeHistory,
		SitesFile:      filepath.Join(defaultDataDir, "sites.yaml"),
		sites:          DefaultSites(),
	}
}

// WithSites returns a copy of cfg using the given site table.
func (c Config) WithSites(sites map[string]string) Config {
	c.sites = copySites(sites)
	return c
}

// SiteURL resolves a site key against the configured table.
func (c Config) SiteURL(site string) (string, bool) {
	url, ok := c.sites[site]
	return url, ok
}

// Sites returns a copy of the configured site table.
func (c Config) Sites() map[string]string {
	return copySites(c.sites)
}

// SiteKeys returns the configured site keys in sorted order.
func (c Config) SiteKeys() []string {
	keys := make([]string, 0, len(c.sites))
	for k := range c.sites {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads configuration from environment variables, ./data/.env and the site table file.
func Load() (Config, error) {
	cfg := Default()

	dataDir := envString("DATA_DIR", cfg.DataDir)
	if err := loadEnvFile(filepath.Join(dataDir, ".env")); err != nil {
		return Config{}, err
	}
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)

	host := envString("HOST", defaultHost)
	port, err := envInt("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("PORT must be 1-65535")
	}
	cfg.ListenAddr = envString("LISTEN_ADDR", net.JoinHostPort(host, strconv.Itoa(port)))

	cfg.Debug = envBool("DEBUG", cfg.Debug)
	cfg.APIKeyEnabled = envBool("API_KEY_ENABLED", cfg.APIKeyEnabled)
	cfg.APIKey = envString("API_KEY", cfg.APIKey)
	cfg.APIKeyHeader = envString("API_KEY_HEADER", cfg.APIKeyHeader)
	cfg.CameraURI = envString("CAMERA_URI", cfg.CameraURI)
	cfg.CameraPath = envString("CAMERA_PATH", cfg.CameraPath)
	cfg.BSODCommand = envString("BSOD_COMMAND", cfg.BSODCommand)
	cfg.OutcomeDB = envString("OUTCOME_DB", "")
	cfg.SitesFile = envString("SITES_FILE", filepath.Join(cfg.DataDir, "sites.yaml"))

	history, err := envInt("OUTCOME_HISTORY", cfg.OutcomeHistory)
	if err != nil {
		return Config{}, err
	}
	if history <= 0 {
		return Config{}, fmt.Errorf("OUTCOME_HISTORY must be > 0")
	}
	cfg.OutcomeHistory = history

	if cfg.APIKeyEnabled && cfg.APIKey == "" {
		return Config{}, errors.New("API_KEY is required when API_KEY_ENABLED is set")
	}

	extra, err := LoadSites(cfg.SitesFile)
	if err != nil {
		return Config{}, err
	}
	for k, v := range extra {
		cfg.sites[k] = v
	}

	return cfg, nil
}

// siteFile is the on-disk layout of the site table.
type siteFile struct {
	Sites map[string]string `yaml:"sites"`
}

// LoadSites reads a YAML site table. Missing files return an empty table.
func LoadSites(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	var f siteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	out := make(map[string]string, len(f.Sites))
	for k, v := range f.Sites {
		key := strings.TrimSpace(k)
		url := strings.TrimSpace(v)
		if key == "" || url == "" {
			return nil, fmt.Errorf("parse %s: site entries need a key and a url", path)
		}
		out[key] = url
	}
	return out, nil
}

// copySites clones a site table.
func copySites(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding the process env.
func loadEnvFile(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for key, value := range values {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}
