package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/nexuscare/nexuscare/internal/storage"
)

// Manager owns the logged-in identity and the session's notification feed.
// The identity is mirrored into the Record Store for continuity across
// restarts; the store copy is a cache, not the source of truth. Sessions
// have no expiry: they last until an explicit logout.
type Manager struct {
	store         *storage.Store
	current       *models.User
	notifications []models.AppNotification
}

// New creates a manager and restores any persisted identity.
func New(store *storage.Store) *Manager {
	m := &Manager{store: store}

	var saved models.User
	if err := store.List(storage.CollectionSession, &saved); err == nil && saved.ID != "" {
		m.current = &saved
		logger.Log.Infow("session restored", "user_id", saved.ID, "role", saved.Role)
	}
	return m
}

// Current returns the logged-in user, or nil.
func (m *Manager) Current() *models.User {
	return m.current
}

// SetUser records a login or profile update and persists the identity.
func (m *Manager) SetUser(user models.User) error {
	m.current = &user
	return m.store.Save(storage.CollectionSession, user)
}

// Logout drops the identity and its persisted mirror.
func (m *Manager) Logout() error {
	m.current = nil
	return m.store.Delete(storage.CollectionSession)
}

// Notify prepends a notification to the feed.
func (m *Manager) Notify(title, message string, typ models.NotificationType) models.AppNotification {
	n := models.AppNotification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	m.notifications = append([]models.AppNotification{n}, m.notifications...)
	return n
}

// Notifications returns the feed, newest first.
func (m *Manager) Notifications() []models.AppNotification {
	return m.notifications
}

// ClearNotifications empties the feed wholesale.
func (m *Manager) ClearNotifications() {
	m.notifications = nil
}
