package config

// AppConfig holds runtime startup configuration loaded from YAML with
// environment overrides. It is built once at startup and passed down
// explicitly, never read from a package global.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	Database       DatabaseConfig `yaml:"database"`
	Redis          RedisConfig    `yaml:"redis"`
	Session        SessionConfig  `yaml:"session"`
	Importer       ImporterConfig `yaml:"importer"`
	RootAdmin      RootAdmin      `yaml:"root_admin"`
	Paths          PathsConfig    `yaml:"paths"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	DSN       string            `yaml:"dsn"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	Charset   string            `yaml:"charset"`
	ParseTime bool              `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	Params    map[string]string `yaml:"params"`
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TLS      bool   `yaml:"tls"`
}

// SessionConfig controls the opaque token format and cookie parameters.
type SessionConfig struct {
	Secret        string `yaml:"secret"`
	CookieName    string `yaml:"cookie_name"`
	TokenAlphabet string `yaml:"token_alphabet"`
	TokenLength   int    `yaml:"token_length"`
	TTLHours      int    `yaml:"ttl_hours"`
	CookieSecure  bool   `yaml:"cookie_secure"`
}

// ImporterConfig controls the external event import job.
type ImporterConfig struct {
	APIKey        string `yaml:"api_key"`
	BaseURL       string `yaml:"base_url"`
	CountryCode   string `yaml:"country_code"`
	PageSize      int    `yaml:"page_size"`
	IntervalHours int    `yaml:"interval_hours"`
	RunOnStart    bool   `yaml:"run_on_start"`
}

// RootAdmin seeds the bootstrap administrator account.
type RootAdmin struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type PathsConfig struct {
	Logs   string `yaml:"logs"`
	Static string `yaml:"static"`
}
