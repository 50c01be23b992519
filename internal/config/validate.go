package config

import (
	"fmt"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31] (got %d)", c.Auth.BcryptCost)
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", DriverPostgres, DriverMemory, c.Storage.Driver)
	}

	if err := c.Inventory.validate(); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}

	return nil
}

func (i *InventoryConfig) validate() error {
	if i.CapacityUnitPerItem <= 0 {
		return fmt.Errorf("capacity_unit_per_item must be > 0 (got %d)", i.CapacityUnitPerItem)
	}
	if i.DefaultAssetPattern == "" {
		return fmt.Errorf("default_asset_pattern must not be empty")
	}
	if i.ActivityListLimit <= 0 {
		return fmt.Errorf("activity_list_limit must be > 0 (got %d)", i.ActivityListLimit)
	}
	if i.DashboardRecentActivities <= 0 {
		return fmt.Errorf("dashboard_recent_activities must be > 0 (got %d)", i.DashboardRecentActivities)
	}
	return nil
}
