package config

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// AuthConfig holds the settings for validating session tokens issued
// by the external identity provider.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// RedisConfig holds the pub/sub transport configuration.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	Output      string `mapstructure:"output"`
	Development bool   `mapstructure:"development"`
}
