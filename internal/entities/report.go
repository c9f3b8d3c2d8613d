package entities

import "time"

type SearchRequest struct {
	Query     string `json:"query"`
	PageSize  int64  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []ReportRow `json:"results,omitempty"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}

type ReportRow struct {
	Segments *Segments `json:"segments,omitempty"`
	Metrics  *Metrics  `json:"metrics,omitempty"`
}

type Segments struct {
	OfferID string `json:"offerId,omitempty"`
	Title   string `json:"title,omitempty"`
	Program string `json:"program,omitempty"`
}

type Metrics struct {
	Impressions int64 `json:"impressions,string,omitempty"`
	Clicks      int64 `json:"clicks,string,omitempty"`
}

// ProductPerformance is one row of the product performance report as printed
// and stored.
type ProductPerformance struct {
	RunID       string    `json:"-"`
	OfferID     string    `json:"offer_id"`
	Title       string    `json:"title"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"-"`
}
