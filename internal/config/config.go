package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации ядра блоков
type Config struct {
	Blocks   BlocksConfig   `yaml:"blocks"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BlocksConfig задаёт служебные ключи регистра
type BlocksConfig struct {
	AirID       uint16 `yaml:"air_id"`
	AirMeta     uint8  `yaml:"air_meta"`
	UnknownID   uint16 `yaml:"unknown_id"`
	UnknownMeta uint8  `yaml:"unknown_meta"`
}

// DispatchConfig управляет распространением обновлений соседям
type DispatchConfig struct {
	PropagateNeighbourUpdates bool `yaml:"propagate_neighbour_updates"`
	// MaxCascade ограничивает число OnNeighbourUpdate за один вызов хука
	MaxCascade int `yaml:"max_cascade"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Blocks: BlocksConfig{
			AirID:     0,
			UnknownID: 248,
		},
		// Addr и MaxCascade пусты: GetAddr и GetMaxCascade берут их из env или дефолта
		Dispatch: DispatchConfig{
			PropagateNeighbourUpdates: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

// GetAddr возвращает адрес метрик: config -> env -> default
func (m *MetricsConfig) GetAddr() string {
	if m.Addr != "" {
		return m.Addr
	}
	if envVal := os.Getenv("VOXEL_METRICS_ADDR"); envVal != "" {
		return envVal
	}
	return ":2112"
}

// GetLevel возвращает уровень логирования: env -> config -> INFO
func (l *LoggingConfig) GetLevel() string {
	if envVal := os.Getenv("VOXEL_LOG_LEVEL"); envVal != "" {
		return envVal
	}
	if l.Level != "" {
		return l.Level
	}
	return "INFO"
}

// GetMaxCascade возвращает лимит каскада с поддержкой env VOXEL_MAX_CASCADE
func (d *DispatchConfig) GetMaxCascade() int {
	if d.MaxCascade > 0 {
		return d.MaxCascade
	}
	if envVal := os.Getenv("VOXEL_MAX_CASCADE"); envVal != "" {
		if n, err := strconv.Atoi(envVal); err == nil && n > 0 {
			return n
		}
	}
	return 4096
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var errs []error
	if c.Blocks.AirMeta > 15 || c.Blocks.UnknownMeta > 15 {
		errs = append(errs, errors.New("blocks: meta must fit in 4 bits"))
	}
	if c.Blocks.AirID == c.Blocks.UnknownID && c.Blocks.AirMeta == c.Blocks.UnknownMeta {
		errs = append(errs, errors.New("blocks: air and unknown must use different keys"))
	}
	if c.Dispatch.MaxCascade < 0 {
		errs = append(errs, fmt.Errorf("dispatch: max_cascade %d is negative", c.Dispatch.MaxCascade))
	}
	return errors.Join(errs...)
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG или возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return cfg, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
