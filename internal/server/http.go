package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"rogue-server/internal/config"
	"rogue-server/internal/engine"
	"rogue-server/internal/version"
	"rogue-server/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Server - HTTP-обвязка: websocket-вход для сессий и операционные
// ручки. Игровой логики здесь нет, только транспорт.
type Server struct {
	cfg      *config.Config
	registry *Registry
	upgrader websocket.Upgrader

	httpSrv *http.Server
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:      cfg,
		registry: NewRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Клиент разрабатывается отдельно и ходит с другого origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run поднимает сервер и блокируется до ошибки или Shutdown.
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWs)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/version", s.handleVersion)
	s.registerDebugRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: enableCORS(mux),
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "server",
		"addr":      s.cfg.Server.Addr,
		"version":   version.String(),
	}).Info("Server listening")

	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown мягко гасит сервер, давая соединениям время закрыться.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// handleWs: одно соединение - одна свежая изолированная сессия.
func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "server",
			"error":     err,
		}).Error("Websocket upgrade failed")
		return
	}

	seed := s.cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	client := newClient(conn, engine.NewGame(s.cfg, seed), s.registry)

	logger.Log.WithFields(logrus.Fields{
		"component": "server",
		"session":   client.ID,
		"remote":    r.RemoteAddr,
	}).Info("Session started")

	go client.run()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.registry.Count(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version":   version.String(),
		"buildDate": version.BuildDate,
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "server",
			"error":     err,
		}).Error("Response encoding failed")
	}
}
