package config

import (
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.BookingAPI.URL == "" {
		return fmt.Errorf("%w: booking_api.url is required", ErrInvalidConfig)
	}
	if c.DiscountService.URL == "" {
		return fmt.Errorf("%w: discount_service.url is required", ErrInvalidConfig)
	}

	if err := c.validateSession(); err != nil {
		return err
	}

	if c.Events.Enabled && (len(c.Events.Brokers) == 0 || c.Events.Topic == "") {
		return fmt.Errorf("%w: events.brokers and events.topic are required when events are enabled", ErrInvalidConfig)
	}

	if _, err := c.Venue.Location(); err != nil {
		return err
	}
	if err := validateRules(c.Venue.Rules()); err != nil {
		return err
	}

	return c.validateFacilities()
}

func (c *Config) validateSession() error {
	switch len(c.Session.HashKey) {
	case 32, 64:
	default:
		return fmt.Errorf("%w: session.hash_key must be 32 or 64 bytes", ErrInvalidConfig)
	}

	switch len(c.Session.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("%w: session.block_key must be 16, 24 or 32 bytes", ErrInvalidConfig)
	}

	return nil
}

func validateRules(r domain.VenueRules) error {
	for name, p := range map[string]domain.SlotParams{"turf": r.Turf, "pool": r.Pool} {
		if p.DurationMinutes <= 0 || p.GapMinutes < 0 ||
			p.StartHour < 0 || p.EndHour > 24 || p.StartHour >= p.EndHour {
			return fmt.Errorf("%w: venue %s slot parameters are invalid", ErrInvalidConfig, name)
		}
	}

	if r.PoolCapacity <= 0 {
		return fmt.Errorf("%w: venue.pool_capacity must be positive", ErrInvalidConfig)
	}
	if r.MaxPoolPersons <= 0 || r.MaxAdditionalPlayers < 0 {
		return fmt.Errorf("%w: venue person limits are invalid", ErrInvalidConfig)
	}
	if r.PerPersonSurcharge < 0 || r.GraceMinutes < 0 {
		return fmt.Errorf("%w: venue surcharge and grace must not be negative", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) validateFacilities() error {
	if len(c.Facilities) == 0 {
		return fmt.Errorf("%w: at least one facility is required", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Facilities))
	for _, f := range c.Facilities {
		if f.ID == "" || f.Name == "" {
			return fmt.Errorf("%w: facility id and name are required", ErrInvalidConfig)
		}
		if _, ok := seen[f.ID]; ok {
			return fmt.Errorf("%w: duplicate facility id %q", ErrInvalidConfig, f.ID)
		}
		seen[f.ID] = struct{}{}

		if !domain.Category(f.Category).Valid() {
			return fmt.Errorf("%w: facility %q has unknown category %q", ErrInvalidConfig, f.ID, f.Category)
		}
		if f.UnitPrice <= 0 {
			return fmt.Errorf("%w: facility %q unit_price must be positive", ErrInvalidConfig, f.ID)
		}
	}

	return nil
}
