package request

type CreateAlertRequest struct {
	Symbol      string  `json:"symbol"`
	Condition   string  `json:"condition"`
	TargetPrice float64 `json:"targetPrice"`
}
