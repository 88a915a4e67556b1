package session

import (
	"testing"

	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/nexuscare/nexuscare/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestSessionPersistsAcrossManagers(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.New(dir)
	assert.NoError(t, err)

	m := New(store)
	assert.Nil(t, m.Current())

	user := models.User{ID: "USR-ABC123", Username: "Jane", Role: models.RolePatient}
	assert.NoError(t, m.SetUser(user))
	assert.Equal(t, &user, m.Current())

	// A fresh manager over the same store restores the identity.
	m2 := New(store)
	assert.NotNil(t, m2.Current())
	assert.Equal(t, user.ID, m2.Current().ID)

	assert.NoError(t, m2.Logout())
	assert.Nil(t, m2.Current())

	m3 := New(store)
	assert.Nil(t, m3.Current())
}

func TestNotificationsPrependAndClear(t *testing.T) {
	store, err := storage.New(t.TempDir())
	assert.NoError(t, err)
	m := New(store)

	first := m.Notify("Identity Authenticated", "Secure medical session established", models.NotifySuccess)
	second := m.Notify("Appointment Booked", "Visit scheduled", models.NotifyInfo)

	feed := m.Notifications()
	assert.Len(t, feed, 2)
	assert.Equal(t, second.ID, feed[0].ID) // newest first
	assert.Equal(t, first.ID, feed[1].ID)
	assert.NotEqual(t, first.ID, second.ID)

	m.ClearNotifications()
	assert.Empty(t, m.Notifications())
}
