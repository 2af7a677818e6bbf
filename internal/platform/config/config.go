package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sidsudred/saa-s-construction-safety-sub002/internal/core/domain"
)

// Config holds application configuration.
type Config struct {
	IsProduction   bool
	SiteName       string      // Display name for the site/project
	DefaultRole    domain.Role // Role the session starts in
	AuditPageSize  int         // Default page size for audit trail reads
	LinkAutoMirror bool        // Record-service links also create the reverse edge
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SITE_NAME", "Default Site")
	viper.SetDefault("DEFAULT_ROLE", string(domain.RoleAdmin))
	viper.SetDefault("AUDIT_PAGE_SIZE", 20)
	viper.SetDefault("LINK_AUTO_MIRROR", true)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SiteName = viper.GetString("SITE_NAME")

	role := domain.Role(viper.GetString("DEFAULT_ROLE"))
	if !role.IsValid() {
		log.Printf("Warning: Invalid value for DEFAULT_ROLE ('%s'). Defaulting to %s.\n", role, domain.RoleAdmin)
		role = domain.RoleAdmin
	}
	cfg.DefaultRole = role

	cfg.AuditPageSize = viper.GetInt("AUDIT_PAGE_SIZE")
	if cfg.AuditPageSize <= 0 {
		log.Printf("Warning: Invalid value for AUDIT_PAGE_SIZE (%d). Defaulting to 20.\n", cfg.AuditPageSize)
		cfg.AuditPageSize = 20
	}

	cfg.LinkAutoMirror = viper.GetBool("LINK_AUTO_MIRROR")

	return cfg, nil
}
