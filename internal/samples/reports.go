package samples

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shopping-samples/internal/entities"
	"shopping-samples/internal/logger"
)

const productPerformanceQuery = `
SELECT
  segments.title,
  segments.offer_id,
  metrics.impressions,
  metrics.clicks
FROM MerchantPerformanceView
WHERE segments.date DURING LAST_30_DAYS
AND segments.program IN ('FREE_PRODUCT_LISTING', 'SHOPPING_ADS')
ORDER BY metrics.clicks DESC
`

var reportSamples = []*Sample{
	{Name: "reports.product_performance", Run: reportsProductPerformance},
}

func reportsProductPerformance(ctx context.Context, env *Env, _ []string) error {
	reports := env.Client.Reports()
	req := &entities.SearchRequest{Query: productPerformanceQuery}

	var rows []entities.ProductPerformance
	for {
		resp, err := reports.Search(ctx, env.merchantID(), req)
		if err != nil {
			return err
		}
		for _, r := range resp.Results {
			row := entities.ProductPerformance{}
			if r.Segments != nil {
				row.OfferID = r.Segments.OfferID
				row.Title = r.Segments.Title
			}
			if r.Metrics != nil {
				row.Impressions = r.Metrics.Impressions
				row.Clicks = r.Metrics.Clicks
			}
			rows = append(rows, row)
		}
		if resp.NextPageToken == "" {
			break
		}
		req.PageToken = resp.NextPageToken
	}

	if len(rows) == 0 {
		env.println("Your search query returned no results.")
		return nil
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	env.println("product_data:")
	env.println(string(data))

	if env.Reports == nil {
		return nil
	}
	runID := uuid.NewString()
	now := time.Now().UTC()
	for i := range rows {
		rows[i].RunID = runID
		rows[i].CreatedAt = now
	}
	if err := env.Reports.SaveProductPerformance(ctx, runID, rows); err != nil {
		return err
	}
	stored, err := env.Reports.FindByRunID(ctx, runID)
	if err != nil {
		return err
	}
	if len(stored) != len(rows) {
		return fmt.Errorf("stored %d of %d report rows for run %s", len(stored), len(rows), runID)
	}
	logger.Info("stored product performance report", "run_id", runID, "rows", len(stored))
	return nil
}
