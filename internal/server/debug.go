package server

import (
	"net/http"

	"rogue-server/internal/domain"
)

// Debug-ручки: снимки живых сессий для отладки генерации и боёвки.
// Формат нестабилен и не является частью протокола.
func (s *Server) registerDebugRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", s.handleDebugSessions)
	mux.HandleFunc("/debug/entities", s.handleDebugEntities)
}

func (s *Server) handleDebugSessions(w http.ResponseWriter, r *http.Request) {
	type sessionInfo struct {
		ID       string `json:"id"`
		Entities int    `json:"entities"`
		Dead     bool   `json:"dead"`
	}

	sessions := make([]sessionInfo, 0, s.registry.Count())
	s.registry.Each(func(c *Client) {
		c.mu.Lock()
		sessions = append(sessions, sessionInfo{
			ID:       c.ID,
			Entities: len(c.Game.Entities),
			Dead:     !c.Game.Player().Alive,
		})
		c.mu.Unlock()
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(sessions),
		"sessions": sessions,
	})
}

func (s *Server) handleDebugEntities(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	client := s.registry.Get(id)
	if client == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}

	client.mu.Lock()
	entities := make([]*domain.Entity, len(client.Game.Entities))
	copy(entities, client.Game.Entities)
	inventory := client.Game.Inventory
	writeJSON(w, http.StatusOK, map[string]any{
		"entities":  entities,
		"inventory": inventory,
	})
	client.mu.Unlock()
}
