// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch or persist data,
// abstracting SQL away from the service layer. Rows are mapped onto the
// model types with pgx.RowToStructByName, so column aliases must match
// the `db` tags.
package repository

import (
	"github.com/alpereneser/connectlist-sub003/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	List             *ListRepository
	Profile          *ProfileRepository
	Notification     *NotificationRepository
	EmailPreferences *EmailPreferencesRepository
}

// NewRepositories constructs the repository container on top of s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		List:             NewListRepository(s),
		Profile:          NewProfileRepository(s),
		Notification:     NewNotificationRepository(s),
		EmailPreferences: NewEmailPreferencesRepository(s),
	}
}
