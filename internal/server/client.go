package server

import (
	"sync"
	"time"

	"rogue-server/internal/engine"
	"rogue-server/pkg/api"
	"rogue-server/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Сколько ждём завершения записи в сокет.
	writeWait = 10 * time.Second

	// Сколько ждём pong от клиента, прежде чем считать его мёртвым.
	pongWait = 60 * time.Second

	// Период пингов; обязан быть меньше pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер входящего сообщения.
	maxMessageSize = 4096
)

// Client - одно websocket-соединение и его персональная игровая
// сессия. Соединение закрылось - сессия умерла, восстановления нет.
type Client struct {
	ID   string
	Game *engine.Game

	conn     *websocket.Conn
	send     chan *api.ServerResponse
	registry *Registry

	// mu сериализует доступ к Game: команды клиента и debug-ручки
	// не должны читать мир во время хода.
	mu sync.Mutex
}

func newClient(conn *websocket.Conn, game *engine.Game, registry *Registry) *Client {
	return &Client{
		ID:       uuid.NewString(),
		Game:     game,
		conn:     conn,
		send:     make(chan *api.ServerResponse, 16),
		registry: registry,
	}
}

// run запускает насосы чтения и записи и первым делом отправляет
// клиенту стартовый снимок.
func (c *Client) run() {
	c.registry.Register(c)

	go c.writePump()

	c.send <- c.process(api.ClientCommand{Action: api.ActionInit})
	c.readPump()
}

// process исполняет команду под блокировкой сессии.
func (c *Client) process(cmd api.ClientCommand) *api.ServerResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Game.ProcessCommand(cmd)
}

func (c *Client) readPump() {
	defer func() {
		c.registry.Unregister(c)
		close(c.send)
		c.conn.Close()
		logger.Log.WithFields(logrus.Fields{
			"component": "server",
			"session":   c.ID,
		}).Info("Session closed")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var cmd api.ClientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithFields(logrus.Fields{
					"component": "server",
					"session":   c.ID,
					"error":     err,
				}).Warn("Unexpected socket close")
			}
			return
		}

		resp := c.process(cmd)
		c.send <- resp

		if resp.Type == api.ResponseExit {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case resp, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(resp); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
