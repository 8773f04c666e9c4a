package model

type GetBTCPriceHistoryRequest struct {
	From string `mapstructure:"from" json:"from"`
	To   string `mapstructure:"to" json:"to"`
}

type PricePoint struct {
	TimestampMs int64   `json:"timestamp_ms"`
	Price       float64 `json:"price"`
}

type GetBTCPriceHistoryResponse struct {
	Prices []PricePoint `json:"prices"`
}
