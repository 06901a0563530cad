package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Payroll     PayrollConfig  `mapstructure:"payroll"`
	Chain       ChainConfig    `mapstructure:"chain"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// AuthConfig contains settings for the identity collaborator
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwtSecret"`
	TokenTTL      time.Duration `mapstructure:"tokenTTL"` // minutes
	AdminEmail    string        `mapstructure:"adminEmail"`
	AdminPassword string        `mapstructure:"adminPassword"`
}

// PayrollConfig contains ledger-level settings
type PayrollConfig struct {
	// FallbackTaxRate applies when the company settings singleton is
	// unavailable; percentage in [0,100]
	FallbackTaxRate string `mapstructure:"fallbackTaxRate"`
}

// ChainConfig is the placeholder for future on-chain settlement
type ChainConfig struct {
	RPCURL          string `mapstructure:"rpcUrl"`
	ContractAddress string `mapstructure:"contractAddress"`
}
