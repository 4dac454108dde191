package usecase

import "github.com/elysianestates/crm-api/internal/entity"

// StageFunnel is one column of the conversion funnel.
type StageFunnel struct {
	Stage entity.LeadStatus `json:"stage"`
	Count int               `json:"count"`
	Share float64           `json:"share"` // count / total leads, 0 when empty
}

// PipelineMetrics are the derived aggregates of the current lead collection.
// They are recomputed per request, never cached, so there is no invalidation
// to get wrong.
type PipelineMetrics struct {
	ClosedSales         []*entity.Lead `json:"closed_sales"`
	TotalClosedValue    float64        `json:"total_closed_value"`
	ActivePipelineValue float64        `json:"active_pipeline_value"`
	ActiveMandateCount  int            `json:"active_mandate_count"`
	Funnel              []StageFunnel  `json:"funnel"`
}

// ComputePipelineMetrics derives the dashboard aggregates from the lead
// collection. Missing deal values and probabilities count as zero.
func ComputePipelineMetrics(leads []*entity.Lead) PipelineMetrics {
	metrics := PipelineMetrics{
		ClosedSales: []*entity.Lead{},
	}

	stageCounts := make(map[entity.LeadStatus]int, len(entity.PipelineStages))

	for _, lead := range leads {
		if lead.Status == entity.StatusClosed {
			// Source order is preserved: closed sales render as a ledger.
			metrics.ClosedSales = append(metrics.ClosedSales, lead)
			metrics.TotalClosedValue += lead.DealValueOrZero()
		} else {
			metrics.ActiveMandateCount++
		}

		if !lead.Status.Terminal() {
			metrics.ActivePipelineValue += lead.DealValueOrZero() * float64(lead.ProbabilityOrZero()) / 100
		}

		stageCounts[lead.Status]++
	}

	total := len(leads)
	for _, stage := range entity.PipelineStages {
		column := StageFunnel{Stage: stage, Count: stageCounts[stage]}
		if total > 0 {
			column.Share = float64(column.Count) / float64(total)
		}
		metrics.Funnel = append(metrics.Funnel, column)
	}

	return metrics
}
