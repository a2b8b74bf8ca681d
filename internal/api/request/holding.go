package request

type CreateHoldingRequest struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchasePrice"`
	PurchaseDate  string  `json:"purchaseDate"`
	Currency      string  `json:"currency"`
}

type UpdateHoldingRequest struct {
	Symbol        *string  `json:"symbol,omitempty"`
	Name          *string  `json:"name,omitempty"`
	Quantity      *float64 `json:"quantity,omitempty"`
	PurchasePrice *float64 `json:"purchasePrice,omitempty"`
	PurchaseDate  *string  `json:"purchaseDate,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
}
