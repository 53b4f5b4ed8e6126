package database

import "time"

// Config holds one named connection's configuration.
type Config struct {
	Driver          string        `json:"driver"`             // mysql | postgres | sqlite3
	DSN             string        `json:"dsn"`                //
	MaxOpenConns    int           `json:"max_open_conns"`     // 0 → driver default below
	MaxIdleConns    int           `json:"max_idle_conns"`     //
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`  //
	ConnMaxIdleTime time.Duration `json:"conn_max_idle_time"` //
}

// withDefaults fills zero pool settings with per-driver defaults.
func (c Config) withDefaults() Config {
	def := defaultsFor(c.Driver)
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = def.MaxOpenConns
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = def.MaxIdleConns
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = def.ConnMaxLifetime
	}
	if c.ConnMaxIdleTime == 0 {
		c.ConnMaxIdleTime = def.ConnMaxIdleTime
	}
	return c
}

// defaultsFor returns sensible pool defaults per driver.
// SQLite works best with a single connection; the servers take more.
func defaultsFor(driver string) Config {
	switch driver {
	case "mysql":
		return Config{
			MaxOpenConns:    50,
			MaxIdleConns:    20,
			ConnMaxLifetime: 60 * time.Minute,
			ConnMaxIdleTime: 30 * time.Minute,
		}
	case "postgres":
		return Config{
			MaxOpenConns:    40,
			MaxIdleConns:    15,
			ConnMaxLifetime: 45 * time.Minute,
			ConnMaxIdleTime: 20 * time.Minute,
		}
	case "sqlite3":
		return Config{
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 24 * time.Hour,
			ConnMaxIdleTime: 2 * time.Hour,
		}
	default:
		return Config{
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 15 * time.Minute,
		}
	}
}

// FetchMode selects how Connection.Select shapes result rows.
type FetchMode int

const (
	// FetchAssoc returns each row as a column-name-keyed map (default).
	FetchAssoc FetchMode = iota
	// FetchNum returns each row as a positional slice.
	FetchNum
)
