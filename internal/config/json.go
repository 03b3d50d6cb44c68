package config

import (
	"encoding/json"
	"os"

	"github.com/cheaguirre/nexuscards/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file override the running Config.
type JsonConfig struct {
	DatabaseDSN       *string `json:"database_dsn"`
	CatalogBaseURL    *string `json:"catalog_base_url"`
	CatalogPageSize   *int    `json:"catalog_page_size"`
	SessionSecret     *string `json:"session_secret"`
	AdminUsername     *string `json:"admin_username"`
	AdminPasswordSalt *string `json:"admin_password_salt"`
	AdminPasswordHash *string `json:"admin_password_hash"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags via flagx.JsonConfigFlags();
// if no path was given, nothing is loaded. Read or unmarshal errors panic
// (caller may recover if desired). Intended usage is:
// defaults -> parseJson -> parseFlags, where later stages override earlier.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.CatalogBaseURL != nil {
		cfg.CatalogBaseURL = *jc.CatalogBaseURL
	}
	if jc.CatalogPageSize != nil {
		cfg.CatalogPageSize = *jc.CatalogPageSize
	}
	if jc.SessionSecret != nil {
		cfg.SessionSecret = *jc.SessionSecret
	}
	if jc.AdminUsername != nil {
		cfg.AdminUsername = *jc.AdminUsername
	}
	if jc.AdminPasswordSalt != nil {
		cfg.AdminPasswordSalt = *jc.AdminPasswordSalt
	}
	if jc.AdminPasswordHash != nil {
		cfg.AdminPasswordHash = *jc.AdminPasswordHash
	}
}
