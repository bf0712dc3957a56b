package configs

import "time"

const (
	GuardLocal = "local"
	GuardRedis = "redis"
)

// Guard selects how concurrent runs are excluded. "local" only protects one
// process; "redis" works across replicas.
type Guard struct {
	Backend string `env:"BACKEND" envDefault:"local"`
}

// Redis configures the client used by the redis run guard.
type Redis struct {
	Address  string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	LockKey  string `env:"LOCK_KEY" envDefault:"adwatch:run-lock"`
	// LockTTL bounds how long a crashed holder can block other runs.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"2h"`
}
