package config

import (
	"os"

	"pickem-pool-go/database"
	"pickem-pool-go/logging"
	"pickem-pool-go/services"
)

// ToDatabaseConfig converts Config to database.Config
func (c *Config) ToDatabaseConfig() database.Config {
	return database.Config{
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		Username: c.Database.Username,
		Password: c.Database.Password,
		Database: c.Database.Database,
	}
}

// ToLoggingConfig converts Config to logging.Config
func (c *Config) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:       c.Logging.Level,
		Output:      os.Stdout,
		Prefix:      c.Logging.Prefix,
		EnableColor: c.Logging.EnableColor,
	}
}

// ToBackupConfig converts Config to services.BackupConfig
func (c *Config) ToBackupConfig() services.BackupConfig {
	return services.BackupConfig{
		BackupDir: c.Backup.BackupDir,
	}
}
