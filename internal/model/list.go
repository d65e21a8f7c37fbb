package model

import "github.com/google/uuid"

// ListCategory is the kind of items a list curates.
type ListCategory string

const (
	ListCategoryMovies ListCategory = "movies"
	ListCategorySeries ListCategory = "series"
	ListCategoryBooks  ListCategory = "books"
	ListCategoryGames  ListCategory = "games"
	ListCategoryPeople ListCategory = "people"
	ListCategoryPlaces ListCategory = "places"
	ListCategoryMusics ListCategory = "musics"
)

// List is a user-created, ordered collection of items.
type List struct {
	BaseWithUpdatedAt
	UserID      uuid.UUID    `json:"user_id" db:"user_id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Category    ListCategory `json:"category" db:"category"`
	IsPublic    bool         `json:"is_public" db:"is_public"`
}
