package session

import (
	"context"
	"encoding/json"
	"time"
)

const (
	flashKeyPrefix = "flash:"
	flashTTL       = 10 * time.Minute
)

// AddFlash queues a one-time notice for the session. Notices survive exactly
// one redirect; redis loss degrades to a missing notice, never an error page.
func (m *Manager) AddFlash(ctx context.Context, sessionID, message string) {
	key := flashKeyPrefix + sessionID
	var messages []string
	if data, _ := m.cache.GetDel(ctx, key); data != nil {
		_ = json.Unmarshal(data, &messages)
	}
	messages = append(messages, message)
	if payload, err := json.Marshal(messages); err == nil {
		_ = m.cache.Set(ctx, key, payload, flashTTL)
	}
}

// PopFlashes returns and consumes all queued notices for the session.
func (m *Manager) PopFlashes(ctx context.Context, sessionID string) []string {
	data, _ := m.cache.GetDel(ctx, flashKeyPrefix+sessionID)
	if data == nil {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil
	}
	return messages
}
