package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config - параметры запуска сервера и настройки генерации уровня.
// Все поля имеют рабочие значения по умолчанию, файл конфигурации опционален.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Game   GameConfig   `yaml:"game"`
}

type ServerConfig struct {
	// Addr - адрес HTTP-сервера, например ":8080".
	Addr string `yaml:"addr"`
}

type GameConfig struct {
	// Seed - мастер-зерно генерации. 0 означает случайный сид на сессию.
	Seed int64 `yaml:"seed"`

	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`

	// MaxRooms - бюджет ПОПЫТОК размещения комнат. Кандидаты, пересекающие
	// уже принятые комнаты, молча отбрасываются, поэтому итоговых комнат
	// может быть меньше.
	MaxRooms    int `yaml:"max_rooms"`
	RoomMinSize int `yaml:"room_min_size"`
	RoomMaxSize int `yaml:"room_max_size"`

	MaxRoomMonsters int `yaml:"max_room_monsters"`
	MaxRoomItems    int `yaml:"max_room_items"`

	// FovRadius - радиус обзора игрока в тайлах.
	FovRadius int `yaml:"fov_radius"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Game: GameConfig{
			Seed:            0,
			MapWidth:        80,
			MapHeight:       45,
			MaxRooms:        30,
			RoomMinSize:     6,
			RoomMaxSize:     10,
			MaxRoomMonsters: 3,
			MaxRoomItems:    2,
			FovRadius:       10,
		},
	}
}

// Load читает YAML-файл конфигурации и валидирует результат.
// Значения из файла накладываются поверх значений по умолчанию.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader декодирует YAML из r. Удобно в тестах, где конфиг
// собирается из строкового литерала.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений. Возвращает объединённую
// ошибку со всеми найденными проблемами.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}

	g := cfg.Game
	if g.MapWidth < 10 || g.MapHeight < 10 {
		errs = append(errs, fmt.Errorf("game map %dx%d is too small", g.MapWidth, g.MapHeight))
	}
	if g.RoomMinSize < 3 {
		errs = append(errs, fmt.Errorf("game.room_min_size %d leaves no interior after the wall border", g.RoomMinSize))
	}
	if g.RoomMaxSize < g.RoomMinSize {
		errs = append(errs, fmt.Errorf("game.room_max_size %d is below room_min_size %d", g.RoomMaxSize, g.RoomMinSize))
	}
	if g.RoomMaxSize >= g.MapWidth-1 || g.RoomMaxSize >= g.MapHeight-1 {
		errs = append(errs, fmt.Errorf("game.room_max_size %d does not fit the map", g.RoomMaxSize))
	}
	if g.MaxRooms < 1 {
		errs = append(errs, errors.New("game.max_rooms must be at least 1"))
	}
	if g.MaxRoomMonsters < 0 || g.MaxRoomItems < 0 {
		errs = append(errs, errors.New("per-room spawn counts must not be negative"))
	}
	if g.FovRadius < 1 {
		errs = append(errs, errors.New("game.fov_radius must be at least 1"))
	}

	return errors.Join(errs...)
}
