package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/afontana/shopfloor/internal/domain"
	"github.com/afontana/shopfloor/internal/schedule"
)

// Config models the shopfloor configuration file.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Scheduling SchedulingConfig `yaml:"scheduling"`
	Capacity   CapacityConfig   `yaml:"capacity"`
}

// DatabaseConfig holds the SQLite connection settings.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SchedulingConfig holds planner tunables.
type SchedulingConfig struct {
	CuttingPolicy string `yaml:"cutting_policy"`
	HorizonDays   int    `yaml:"horizon_days"`
}

// CapacityConfig allows overriding the built-in daily limits. Keys are
// material codes; cutting values are pieces per day by structure type,
// production values are minutes per day.
type CapacityConfig struct {
	Cutting    map[string]map[string]int `yaml:"cutting"`
	Production map[string]int            `yaml:"production"`
}

// DefaultDatabasePath returns the default on-disk database location.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "shopfloor.db"
	}
	return filepath.Join(home, ".shopfloor", "shopfloor.db")
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: DefaultDatabasePath()},
		Scheduling: SchedulingConfig{
			CuttingPolicy: string(schedule.PolicyExclusive),
			HorizonDays:   schedule.DefaultHorizonDays,
		},
	}
}

// Load reads the configuration from the given path. A missing file is not an
// error; defaults are returned instead. Values absent from the file fall back
// to their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath()
	}
	if c.Scheduling.CuttingPolicy == "" {
		c.Scheduling.CuttingPolicy = string(schedule.PolicyExclusive)
	}
	if c.Scheduling.HorizonDays <= 0 {
		c.Scheduling.HorizonDays = schedule.DefaultHorizonDays
	}
}

func (c *Config) validate() error {
	switch schedule.CuttingPolicy(c.Scheduling.CuttingPolicy) {
	case schedule.PolicyExclusive, schedule.PolicyShared:
	default:
		return fmt.Errorf("scheduling.cutting_policy must be %q or %q", schedule.PolicyExclusive, schedule.PolicyShared)
	}
	for material := range c.Capacity.Cutting {
		if _, err := domain.ParseMaterial(material); err != nil {
			return fmt.Errorf("capacity.cutting: %w", err)
		}
	}
	for material, structures := range c.Capacity.Cutting {
		for structure, limit := range structures {
			if _, err := domain.ParseStructureType(structure); err != nil {
				return fmt.Errorf("capacity.cutting[%s]: %w", material, err)
			}
			if limit <= 0 {
				return fmt.Errorf("capacity.cutting[%s][%s] must be positive", material, structure)
			}
		}
	}
	for material, limit := range c.Capacity.Production {
		if _, err := domain.ParseMaterial(material); err != nil {
			return fmt.Errorf("capacity.production: %w", err)
		}
		if limit <= 0 {
			return fmt.Errorf("capacity.production[%s] must be positive", material)
		}
	}
	return nil
}

// Policy returns the configured cutting policy.
func (c *Config) Policy() schedule.CuttingPolicy {
	return schedule.CuttingPolicy(c.Scheduling.CuttingPolicy)
}

// ToRegistry builds the capacity registry, starting from the built-in limits
// and applying any overrides from the file.
func (c *Config) ToRegistry() schedule.CapacityRegistry {
	reg := schedule.DefaultCapacity()
	for material, structures := range c.Capacity.Cutting {
		m := domain.Material(material)
		if reg.Cutting[m] == nil {
			reg.Cutting[m] = make(map[domain.StructureType]int)
		}
		for structure, limit := range structures {
			reg.Cutting[m][domain.StructureType(structure)] = limit
		}
	}
	for material, limit := range c.Capacity.Production {
		reg.Production[domain.Material(material)] = limit
	}
	return reg
}
