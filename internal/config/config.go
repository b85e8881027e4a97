package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Data      DataConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	LinkCheck LinkCheckConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	WSPort      string
	LogLevel    string
}

type DataConfig struct {
	Dir              string
	CatalogSource    string
	CoursesFile      string
	QuestionsFile    string
	AchievementsFile string
	RoadmapsFile     string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

type LinkCheckConfig struct {
	Workers       int
	RatePerSecond int
	Timeout       time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidConfig      = errors.New("invalid configuration")
)

// key -> environment variable, default
var bindings = []struct {
	key, env string
	def      any
}{
	{"app.name", "APP_NAME", "path-pilot"},
	{"app.env", "APP_ENV", "development"},
	{"app.http_port", "HTTP_PORT", "8080"},
	{"app.ws_port", "WS_PORT", "8081"},
	{"app.log_level", "LOG_LEVEL", "info"},

	{"data.dir", "DATA_DIR", "data"},
	{"data.catalog_source", "CATALOG_SOURCE", CatalogSourceFile},
	{"data.courses_file", "COURSES_FILE", "courses.json"},
	{"data.questions_file", "QUESTIONS_FILE", "questions.json"},
	{"data.achievements_file", "ACHIEVEMENTS_FILE", "achievements.json"},
	{"data.roadmaps_file", "ROADMAPS_FILE", "roadmaps.yaml"},

	{"database.host", "DB_HOST", ""},
	{"database.port", "DB_PORT", "5432"},
	{"database.name", "DB_NAME", ""},
	{"database.user", "DB_USER", ""},
	{"database.password", "DB_PASSWORD", ""},
	{"database.ssl_mode", "DB_SSL_MODE", "disable"},
	{"database.connect_timeout", "DB_CONNECT_TIMEOUT", 5 * time.Second},
	{"database.pool_max_conns", "DB_POOL_MAX_CONNS", 10},
	{"database.pool_min_conns", "DB_POOL_MIN_CONNS", 0},
	{"database.pool_max_conn_lifetime", "DB_POOL_MAX_CONN_LIFETIME", time.Hour},
	{"database.pool_max_conn_idle_time", "DB_POOL_MAX_CONN_IDLE_TIME", 30 * time.Minute},
	{"database.pool_health_check_period", "DB_POOL_HEALTH_CHECK_PERIOD", time.Minute},

	{"redis.enabled", "REDIS_ENABLED", false},
	{"redis.host", "REDIS_HOST", "localhost"},
	{"redis.port", "REDIS_PORT", "6379"},
	{"redis.password", "REDIS_PASSWORD", ""},
	{"redis.db", "REDIS_DB", 0},
	{"redis.ttl", "REDIS_TTL", 10 * time.Minute},

	{"linkcheck.workers", "LINKCHECK_WORKERS", 4},
	{"linkcheck.rate_per_second", "LINKCHECK_RATE_PER_SECOND", 2},
	{"linkcheck.timeout", "LINKCHECK_TIMEOUT", 10 * time.Second},
}

// Load reads configuration from the environment, optionally layered over the
// YAML file named by CONFIG_FILE. Environment variables win over the file.
func Load() (Config, error) {
	v := viper.New()
	for _, b := range bindings {
		v.SetDefault(b.key, b.def)
		if err := v.BindEnv(b.key, b.env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", b.env, err)
		}
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	str := func(key string) string { return strings.TrimSpace(v.GetString(key)) }

	cfg := Config{
		App: AppConfig{
			AppName:     str("app.name"),
			Environment: str("app.env"),
			HTTPPort:    str("app.http_port"),
			WSPort:      str("app.ws_port"),
			LogLevel:    strings.ToLower(str("app.log_level")),
		},
		Data: DataConfig{
			Dir:              str("data.dir"),
			CatalogSource:    strings.ToLower(str("data.catalog_source")),
			CoursesFile:      str("data.courses_file"),
			QuestionsFile:    str("data.questions_file"),
			AchievementsFile: str("data.achievements_file"),
			RoadmapsFile:     str("data.roadmaps_file"),
		},
		Database: DatabaseConfig{
			DBHost:                str("database.host"),
			DBPort:                str("database.port"),
			DBName:                str("database.name"),
			DBUser:                str("database.user"),
			DBPassword:            v.GetString("database.password"),
			DBSSLMode:             str("database.ssl_mode"),
			ConnectTimeout:        v.GetDuration("database.connect_timeout"),
			PoolMaxConns:          v.GetInt32("database.pool_max_conns"),
			PoolMinConns:          v.GetInt32("database.pool_min_conns"),
			PoolMaxConnLifetime:   v.GetDuration("database.pool_max_conn_lifetime"),
			PoolMaxConnIdleTime:   v.GetDuration("database.pool_max_conn_idle_time"),
			PoolHealthCheckPeriod: v.GetDuration("database.pool_health_check_period"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     str("redis.host"),
			Port:     str("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl"),
		},
		LinkCheck: LinkCheckConfig{
			Workers:       v.GetInt("linkcheck.workers"),
			RatePerSecond: v.GetInt("linkcheck.rate_per_second"),
			Timeout:       v.GetDuration("linkcheck.timeout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	req := func(env, val string) {
		if val == "" {
			missing = append(missing, env)
		}
	}

	req("HTTP_PORT", c.App.HTTPPort)
	req("DATA_DIR", c.Data.Dir)

	switch c.Data.CatalogSource {
	case CatalogSourceFile:
		req("COURSES_FILE", c.Data.CoursesFile)
	case CatalogSourcePostgres:
		req("DB_HOST", c.Database.DBHost)
		req("DB_NAME", c.Database.DBName)
		req("DB_USER", c.Database.DBUser)
	default:
		return fmt.Errorf("%w: CATALOG_SOURCE must be %q or %q, got %q",
			errInvalidConfig, CatalogSourceFile, CatalogSourcePostgres, c.Data.CatalogSource)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return nil
}

// Path resolves a data file name against the data directory.
func (d DataConfig) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, name)
}

func (d DatabaseConfig) Configured() bool {
	return d.DBHost != "" && d.DBName != "" && d.DBUser != ""
}
