package request

type CreateDividendRequest struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes"`
}
