package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"strconv"
)

// DSNValue returns the MySQL DSN, either the explicit one or one built
// from the individual fields.
func (c DatabaseConfig) DSNValue() string {
	if c.DSN != "" {
		return c.DSN
	}

	params := neturl.Values{}
	for k, v := range c.Params {
		if k != "" && v != "" {
			params.Set(k, v)
		}
	}
	if params.Get("charset") == "" {
		params.Set("charset", c.Charset)
	}
	if params.Get("parseTime") == "" {
		params.Set("parseTime", strconv.FormatBool(c.ParseTime))
	}
	if params.Get("loc") == "" {
		params.Set("loc", c.Loc)
	}

	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s", c.User, c.Password, addr, c.Name, params.Encode())
}

// RedisURLValue returns the redis connection URL, either the explicit one
// or one built from the individual fields.
func (c RedisConfig) RedisURLValue() string {
	scheme := "redis"
	if c.TLS {
		scheme = "rediss"
	}
	if c.URL != "" {
		return c.URL
	}
	u := neturl.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + strconv.Itoa(c.DB),
	}
	if c.Username != "" || c.Password != "" {
		u.User = neturl.UserPassword(c.Username, c.Password)
	}
	return u.String()
}
