package request

type CreateTransactionRequest struct {
	Type      string  `json:"type"`
	Symbol    string  `json:"symbol"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	CostBasis float64 `json:"costBasis"`
	Date      string  `json:"date"`
	Notes     string  `json:"notes"`
}
