package api

import "encoding/json"

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - полный "снимок" мира, видимого клиенту.
// Отправляется в ответ на каждую команду.
type ServerResponse struct {
	// Type - INIT при первой отрисовке, UPDATE после команды,
	// EXIT когда сессия завершена.
	Type string `json:"type"`

	// PlayerID - ID сущности игрока этой сессии.
	PlayerID string `json:"playerId,omitempty"`

	// Dead - игрок мёртв; клиенту остаются только просмотр и QUIT.
	Dead bool `json:"dead,omitempty"`

	// Grid - размеры карты для подготовки сетки рендеринга.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map - все исследованные тайлы. Видимые рендерятся ярко,
	// исследованные-но-невидимые - тускло (туман войны).
	Map []TileView `json:"map,omitempty"`

	// Entities - видимые сущности (сам игрок присутствует всегда).
	Entities []EntityView `json:"entities,omitempty"`

	// Inventory - содержимое инвентаря; метки опций для клиентского меню.
	Inventory *InventoryView `json:"inventory,omitempty"`

	// Logs - записи лога, появившиеся после предыдущего снимка.
	Logs []LogEntry `json:"logs,omitempty"`
}

type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView - DTO одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	IsWall     bool `json:"isWall"`
	IsVisible  bool `json:"isVisible"`
	IsExplored bool `json:"isExplored"`
}

// EntityView - DTO игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// Stats присутствует только у сущностей с боевыми характеристиками.
	Stats *StatsView `json:"stats,omitempty"`
}

type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Defense int  `json:"defense"`
	Power   int  `json:"power"`
	IsDead  bool `json:"isDead"`
}

// InventoryView - метки для внешнего меню выбора (не больше 9 опций).
type InventoryView struct {
	Items    []InventoryItemView `json:"items"`
	Capacity int                 `json:"capacity"`
}

type InventoryItemView struct {
	Index  int    `json:"index"` // индекс для команды USE/DROP
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// LogEntry - одна строка игрового лога.
type LogEntry struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// Действия протокола.
const (
	ActionInit       = "INIT"
	ActionMove       = "MOVE"
	ActionPickup     = "PICKUP"
	ActionUse        = "USE"
	ActionDrop       = "DROP"
	ActionInventory  = "INVENTORY"
	ActionFullscreen = "FULLSCREEN"
	ActionQuit       = "QUIT"
)

// Типы ответов сервера.
const (
	ResponseInit   = "INIT"
	ResponseUpdate = "UPDATE"
	ResponseExit   = "EXIT"
)

// ClientCommand - входящее сообщение от клиента.
// Нераспознанный Action - это ход "вхолостую": мир не двигается.
type ClientCommand struct {
	// Action: INIT, MOVE, PICKUP, USE, DROP, INVENTORY, FULLSCREEN, QUIT.
	Action string `json:"action"`

	// Payload - данные действия; структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DirectionPayload - шаг в одном из четырёх направлений (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// ItemPayload - выбор предмета инвентаря по индексу (USE, DROP).
// Индекс - это ответ внешнего меню выбора.
type ItemPayload struct {
	Index int `json:"index"`
}
