package models

// Quote is the latest price and percent change for a symbol
type Quote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"change_pct"`
}

// Instrument is one entry of the tradable universe snapshot
type Instrument struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
}

// NewsItem is a single headline with optional sentiment and summary
type NewsItem struct {
	Headline  string `json:"headline"`
	Source    string `json:"source"`
	Sentiment string `json:"sentiment,omitempty"`
	Summary   string `json:"summary,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Story is a raw Hacker News item
type Story struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
	Score int    `json:"score"`
}
