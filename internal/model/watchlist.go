package model

import "time"

// WatchlistItem is a symbol the user follows without holding a position.
type WatchlistItem struct {
	ID      string    `json:"id"`
	Symbol  string    `json:"symbol"`
	Name    string    `json:"name"`
	AddedAt time.Time `json:"addedAt"`
}
