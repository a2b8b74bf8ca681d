package yahoo

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API. The structure maps the nested chart format directly:
//   - Chart.Result: array of result objects (typically one element)
//   - Chart.Result[].Meta: symbol metadata, current price, previous close
//   - Chart.Result[].Timestamp: Unix timestamps per data point
//   - Chart.Result[].Indicators: OHLCV arrays aligned with Timestamp
//   - Chart.Error: optional error message from the API
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				ExchangeName       string  `json:"exchangeName"`
				LongName           string  `json:"longName"`
				ShortName          string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
				PreviousClose      float64 `json:"previousClose"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// ValidRanges are the history ranges the chart API accepts.
var ValidRanges = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true,
	"6mo": true, "1y": true, "5y": true,
}
