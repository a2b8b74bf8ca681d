package request

type AddWatchlistItemRequest struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
