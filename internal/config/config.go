package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// ErrInvalidConfig возвращается при невалидной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig     `toml:"server"`
	Logs            LogsConfig       `toml:"logs"`
	Metrics         MetricsConfig    `toml:"metrics"`
	Database        DatabaseConfig   `toml:"database"`
	BookingAPI      ServiceConfig    `toml:"booking_api"`
	DiscountService ServiceConfig    `toml:"discount_service"`
	Session         SessionConfig    `toml:"session"`
	Events          EventsConfig     `toml:"events"`
	Venue           VenueConfig      `toml:"venue"`
	Facilities      []FacilityConfig `toml:"facilities"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// ServiceConfig адрес и таймаут внешнего сервиса
type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// TimeoutDuration возвращает таймаут как time.Duration
func (s ServiceConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	HashKey    string `toml:"hash_key"`
	BlockKey   string `toml:"block_key"`
	MaxAge     int    `toml:"max_age"`
	Secure     bool   `toml:"secure"`
}

type EventsConfig struct {
	Enabled      bool     `toml:"enabled"`
	Brokers      []string `toml:"brokers"`
	Topic        string   `toml:"topic"`
	WriteTimeout int      `toml:"write_timeout"`
}

// VenueConfig правила площадки, по умолчанию domain.DefaultVenueRules
type VenueConfig struct {
	Timezone             string `toml:"timezone"`
	TurfStartHour        int    `toml:"turf_start_hour"`
	TurfEndHour          int    `toml:"turf_end_hour"`
	TurfSlotMinutes      int    `toml:"turf_slot_minutes"`
	TurfGapMinutes       int    `toml:"turf_gap_minutes"`
	PoolStartHour        int    `toml:"pool_start_hour"`
	PoolEndHour          int    `toml:"pool_end_hour"`
	PoolBlockMinutes     int    `toml:"pool_block_minutes"`
	PoolCapacity         int    `toml:"pool_capacity"`
	PoolCutoffHour       int    `toml:"pool_cutoff_hour"`
	GraceMinutes         int    `toml:"grace_minutes"`
	PerPersonSurcharge   int64  `toml:"per_person_surcharge"`
	MaxAdditionalPlayers int    `toml:"max_additional_players"`
	MaxPoolPersons       int    `toml:"max_pool_persons"`
}

// Rules собирает domain.VenueRules
func (v VenueConfig) Rules() domain.VenueRules {
	return domain.VenueRules{
		Turf: domain.SlotParams{
			StartHour:       v.TurfStartHour,
			EndHour:         v.TurfEndHour,
			DurationMinutes: v.TurfSlotMinutes,
			GapMinutes:      v.TurfGapMinutes,
		},
		Pool: domain.SlotParams{
			StartHour:       v.PoolStartHour,
			EndHour:         v.PoolEndHour,
			DurationMinutes: v.PoolBlockMinutes,
		},
		PoolCapacity:         v.PoolCapacity,
		PoolCutoff:           domain.NewTimeOfDay(v.PoolCutoffHour, 0),
		GraceMinutes:         v.GraceMinutes,
		PerPersonSurcharge:   v.PerPersonSurcharge,
		MaxAdditionalPlayers: v.MaxAdditionalPlayers,
		MaxPoolPersons:       v.MaxPoolPersons,
	}
}

// Location возвращает часовой пояс площадки
func (v VenueConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: venue.timezone %q: %v", ErrInvalidConfig, v.Timezone, err)
	}
	return loc, nil
}

type FacilityConfig struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	Category  string `toml:"category"`
	UnitPrice int64  `toml:"unit_price"`
	Capacity  int    `toml:"capacity"`
}

// FacilityList возвращает каталог площадок в порядке конфигурации
func (c *Config) FacilityList() []domain.Facility {
	facilities := make([]domain.Facility, 0, len(c.Facilities))
	for _, f := range c.Facilities {
		facilities = append(facilities, domain.Facility{
			ID:        f.ID,
			Name:      f.Name,
			Category:  domain.Category(f.Category),
			UnitPrice: f.UnitPrice,
			Capacity:  f.Capacity,
		})
	}
	return facilities
}

// Load читает конфигурацию из TOML-файла, применяет значения по умолчанию,
// переменные окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	rules := domain.DefaultVenueRules()

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "venue-booking",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		BookingAPI:      ServiceConfig{Timeout: 10},
		DiscountService: ServiceConfig{Timeout: 5},
		Session: SessionConfig{
			CookieName: "venue_draft",
			MaxAge:     86400,
		},
		Events: EventsConfig{
			Topic:        "venue.bookings",
			WriteTimeout: 5,
		},
		Venue: VenueConfig{
			Timezone:             domain.DefaultTimezone,
			TurfStartHour:        rules.Turf.StartHour,
			TurfEndHour:          rules.Turf.EndHour,
			TurfSlotMinutes:      rules.Turf.DurationMinutes,
			TurfGapMinutes:       rules.Turf.GapMinutes,
			PoolStartHour:        rules.Pool.StartHour,
			PoolEndHour:          rules.Pool.EndHour,
			PoolBlockMinutes:     rules.Pool.DurationMinutes,
			PoolCapacity:         rules.PoolCapacity,
			PoolCutoffHour:       domain.DefaultPoolCutoffHour,
			GraceMinutes:         rules.GraceMinutes,
			PerPersonSurcharge:   rules.PerPersonSurcharge,
			MaxAdditionalPlayers: rules.MaxAdditionalPlayers,
			MaxPoolPersons:       rules.MaxPoolPersons,
		},
	}
}

// applyEnv переопределяет секреты из переменных окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("SESSION_HASH_KEY"); v != "" {
		cfg.Session.HashKey = v
	}
	if v := os.Getenv("SESSION_BLOCK_KEY"); v != "" {
		cfg.Session.BlockKey = v
	}
}
