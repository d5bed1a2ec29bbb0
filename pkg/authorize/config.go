package authorize

import "github.com/mentora/mentora_backend/config"

// Config holds configuration for the authorization system
type Config struct {
	// CasbinModelPath is the path to the Casbin model configuration file
	CasbinModelPath string

	// EnableAudit enables audit logging for all authorization decisions
	EnableAudit bool

	// AdminBypass allows platform superadmins to bypass all authorization checks
	AdminBypass bool
}

// DefaultConfig returns sensible defaults for authorization configuration
func DefaultConfig() Config {
	return Config{
		CasbinModelPath: "casbin_model.conf",
		EnableAudit:     true,
		AdminBypass:     true,
	}
}

// FromCentralConfig converts central config.AuthorizationConfig to package Config
func FromCentralConfig(c config.AuthorizationConfig) Config {
	return Config{
		CasbinModelPath: c.CasbinModelPath,
		EnableAudit:     c.EnableAudit,
		AdminBypass:     c.AdminBypass,
	}
}
