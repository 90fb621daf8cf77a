package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// Driver is "mysql" (default) or "sqlite".
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN returns the driver specific data source name. For sqlite the
// database field is the file path.
func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Database
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether a redis server is configured.
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	// RenewURL is linked from reminder e-mails.
	RenewURL string `mapstructure:"renew_url"`
}

type SubscriptionConfig struct {
	Timezone              string `mapstructure:"timezone"`
	LockSweepCron         string `mapstructure:"lock_sweep_cron"`
	ReminderEnabled       bool   `mapstructure:"reminder_enabled"`
	ReminderIntervalHours int    `mapstructure:"reminder_interval_hours"`
	JobTimeoutMinutes     int    `mapstructure:"job_timeout_minutes"`
}

func (s *SubscriptionConfig) ReminderInterval() time.Duration {
	if s.ReminderIntervalHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(s.ReminderIntervalHours) * time.Hour
}

func (s *SubscriptionConfig) JobTimeout() time.Duration {
	if s.JobTimeoutMinutes <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(s.JobTimeoutMinutes) * time.Minute
}
