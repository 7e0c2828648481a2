// internal/service/batch.go

package service

import (
	"sync"
	"sync/atomic"

	"solar_analysis/internal/domain"
)

// AnalyzeBatch analyzes every site concurrently with a bounded worker pool.
// Results keep the input order and per-site failures are isolated: one bad
// record never aborts the batch.
func (svc *Service) AnalyzeBatch(sites []domain.AnalysisRequest) []domain.SiteResult {
	results := make([]domain.SiteResult, len(sites))

	sem := make(chan struct{}, svc.cfg.BatchWorkers)
	var wg sync.WaitGroup

	for i, site := range sites {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, req domain.AnalysisRequest) {
			defer wg.Done()
			defer func() { <-sem }()

			siteID := req.SiteID
			if siteID == "" {
				siteID = "unknown"
			}

			if req.Inputs == nil {
				results[i] = domain.SiteResult{
					SiteID: siteID,
					Status: "error",
					Error:  (&domain.ValidationError{Field: "inputs"}).Error(),
				}
				return
			}

			result, err := svc.Analyze(*req.Inputs)
			if err != nil {
				results[i] = domain.SiteResult{
					SiteID: siteID,
					Status: "error",
					Error:  err.Error(),
				}
				return
			}

			atomic.AddUint64(&svc.batchCount, 1)
			results[i] = domain.SiteResult{
				PredictionResult: result,
				SiteID:           siteID,
				Status:           "success",
			}
		}(i, site)
	}

	wg.Wait()
	return results
}
