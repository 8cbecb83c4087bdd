package config

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config must validate, got: %v", err)
	}
}

func TestLoadFromReaderOverridesDefaults(t *testing.T) {
	yml := `
server:
  addr: ":9090"
game:
  seed: 42
  map_width: 60
  map_height: 40
`
	cfg, err := LoadFromReader(strings.NewReader(yml))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Game.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Game.Seed)
	}
	if cfg.Game.MapWidth != 60 || cfg.Game.MapHeight != 40 {
		t.Errorf("map = %dx%d, want 60x40", cfg.Game.MapWidth, cfg.Game.MapHeight)
	}
	// Не указанные в файле значения остаются дефолтными
	if cfg.Game.MaxRooms != 30 {
		t.Errorf("max_rooms = %d, want default 30", cfg.Game.MaxRooms)
	}
}

func TestLoadFromReaderRejectsUnknownFields(t *testing.T) {
	yml := `
game:
  dungeon_depth: 12
`
	if _, err := LoadFromReader(strings.NewReader(yml)); err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
}

func TestValidateRejectsBadRoomSizes(t *testing.T) {
	cfg := Default()
	cfg.Game.RoomMinSize = 9
	cfg.Game.RoomMaxSize = 6

	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for room_max_size < room_min_size, got nil")
	}
}
