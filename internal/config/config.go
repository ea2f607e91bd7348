package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage  string `yaml:"storage" env:"STORAGE" env-default:"redis"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

var ErrUnknownStorage = errors.New("unknown storage driver")

type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

// Game holds the rules for new games and the board geometry used to map pointer positions to cells.
type Game struct {
	BoardSize    int     `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"15"`
	WinLength    int     `yaml:"win-length" env:"GAME_WIN_LENGTH" env-default:"5"`
	BoardPadding float64 `yaml:"board-padding" env:"GAME_BOARD_PADDING" env-default:"20"`
	CellSize     float64 `yaml:"cell-size" env:"GAME_CELL_SIZE" env-default:"40"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the yaml file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Storage != StorageRedis && config.Storage != StorageMemory {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, config.Storage)
	}

	if err := config.Game.Settings().Validate(); err != nil {
		return nil, fmt.Errorf("invalid game section: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Game) Settings() entity.Settings {
	return entity.Settings{
		BoardSize: that.BoardSize,
		WinLength: that.WinLength,
	}
}
