package config

import "strings"

func normalize(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	cfg.Env = strings.TrimSpace(cfg.Env)
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	cfg.Database = normalizeDatabase(cfg.Database)
	cfg.Redis = normalizeRedis(cfg.Redis)
	cfg.Session = normalizeSession(cfg.Session)
	cfg.Importer = normalizeImporter(cfg.Importer)
}

func normalizeDatabase(c DatabaseConfig) DatabaseConfig {
	c.DSN = strings.TrimSpace(c.DSN)
	c.Host = strings.TrimSpace(c.Host)
	c.User = strings.TrimSpace(c.User)
	c.Name = strings.TrimSpace(c.Name)
	c.Charset = strings.TrimSpace(c.Charset)
	c.Loc = strings.TrimSpace(c.Loc)

	if c.Host == "" {
		c.Host = defaultDBHost
	}
	if c.Port == 0 {
		c.Port = defaultDBPort
	}
	if c.User == "" {
		c.User = defaultDBUser
	}
	if c.Password == "" {
		c.Password = defaultDBPassword
	}
	if c.Name == "" {
		c.Name = defaultDBName
	}
	if c.Charset == "" {
		c.Charset = defaultDBCharset
	}
	if c.Loc == "" {
		c.Loc = defaultDBLoc
	}
	return c
}

func normalizeRedis(c RedisConfig) RedisConfig {
	c.URL = strings.TrimSpace(c.URL)
	c.Host = strings.TrimSpace(c.Host)
	if c.Host == "" && c.URL == "" {
		c.Host = defaultRedisHost
	}
	if c.Port == 0 {
		c.Port = defaultRedisPort
	}
	if c.DB < 0 {
		c.DB = defaultRedisDB
	}
	return c
}

func normalizeSession(c SessionConfig) SessionConfig {
	c.Secret = strings.TrimSpace(c.Secret)
	c.CookieName = strings.TrimSpace(c.CookieName)
	c.TokenAlphabet = strings.TrimSpace(c.TokenAlphabet)

	if c.CookieName == "" {
		c.CookieName = defaultSessionCookie
	}
	if c.TokenAlphabet == "" {
		c.TokenAlphabet = defaultTokenAlphabet
	}
	if c.TokenLength == 0 {
		c.TokenLength = defaultTokenLength
	}
	if c.TTLHours == 0 {
		c.TTLHours = defaultSessionTTLHours
	}
	return c
}

func normalizeImporter(c ImporterConfig) ImporterConfig {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.BaseURL = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/"))
	c.CountryCode = strings.TrimSpace(c.CountryCode)

	if c.BaseURL == "" {
		c.BaseURL = defaultTicketmasterBaseURL
	}
	if c.CountryCode == "" {
		c.CountryCode = "US"
	}
	if c.PageSize == 0 {
		c.PageSize = 100
	}
	if c.IntervalHours == 0 {
		c.IntervalHours = defaultImportIntervalHours
	}
	return c
}
