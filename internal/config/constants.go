package config

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort = 3000
	defaultEnv  = "development"

	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "eventmaster"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"

	defaultRedisHost = "localhost"
	defaultRedisPort = 6379
	defaultRedisDB   = 0

	defaultSessionCookie   = "SESSION_ID"
	defaultSessionTTLHours = 24 * 7
	defaultTokenLength     = 32
	defaultTokenAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	defaultImportIntervalHours = 6
	defaultTicketmasterBaseURL = "https://app.ticketmaster.com/discovery/v2"
)
