// Package config handles runtime configuration for NexusCards,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the NexusCards CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database.
//   - CatalogBaseURL: base URL of the remote read-only card catalog API.
//   - CatalogPageSize: how many items to request from the catalog list endpoint.
//   - SessionSecret: HMAC secret used to sign the persisted session record.
//   - AdminUsername / AdminPasswordSalt / AdminPasswordHash: the injected
//     administrator credential. The password is never configured in plaintext;
//     the salt and derived hash are supplied base64-encoded.
type Config struct {
	DatabaseDSN     string
	CatalogBaseURL  string
	CatalogPageSize int
	SessionSecret   string

	AdminUsername     string
	AdminPasswordSalt string
	AdminPasswordHash string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the session secret and administrator credential below are insecure
// development values and should be overridden for any real deployment.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "nexuscards.db"
	c.CatalogBaseURL = "https://pokeapi.co/api/v2"
	c.CatalogPageSize = 50
	c.SessionSecret = "secretKey"
	c.AdminUsername = "admin"
	// PBKDF2-SHA256("admin123") with the salt below.
	c.AdminPasswordSalt = "bmV4dXNjYXJkcy1hZG1pbg=="
	c.AdminPasswordHash = "5zAlN5PRRjyGzRYUzeqLsZMHcmHO93RAZQIoG5GZjsg="
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
