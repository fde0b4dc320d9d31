// Package costing turns a finished cutting plan into billable totals:
// board quantities per material, edge banding length, and saw travel.
package costing

import "github.com/piwi3910/cutplan/internal/model"

// Rates holds the per-mm prices applied to a plan.
type Rates struct {
	CutCostPerMM  float64 `json:"cut_cost_per_mm"`
	WrapCostPerMM float64 `json:"wrap_cost_per_mm"`
	Currency      string  `json:"currency"`
}

// MaterialUsage summarizes board consumption for one material. Two half
// boards (any mix of narrow and wide) bill as one full board; an odd
// leftover half bills as 0.5.
type MaterialUsage struct {
	Material       model.MaterialSpec `json:"material"`
	FullBoards     int                `json:"full_boards"`
	NarrowHalves   int                `json:"narrow_halves"`
	WideHalves     int                `json:"wide_halves"`
	BilledQuantity float64            `json:"billed_quantity"`
	Cost           float64            `json:"cost"`
}

// Summary holds the complete cost breakdown of a plan. Usages follow the
// plan's material order.
type Summary struct {
	Usages []MaterialUsage `json:"usages"`

	TotalWrapLengthMM float64 `json:"total_wrap_length_mm"`
	TotalWrapCost     float64 `json:"total_wrap_cost"`

	TotalCutLengthMM float64 `json:"total_cut_length_mm"`
	TotalCutCost     float64 `json:"total_cut_cost"`

	GrandTotal float64 `json:"grand_total"`
	Currency   string  `json:"currency"`
}

// WrapLength returns the banding length of one placed item:
// oriented height per banded left/right edge plus oriented width per
// banded top/bottom edge.
func WrapLength(p model.PlacedItem) float64 {
	return p.Height*float64(p.Spec.Wrap.ParallelCount()) +
		p.Width*float64(p.Spec.Wrap.PerpendicularCount())
}

// BilledQuantity converts full and half board counts into billed full
// boards.
func BilledQuantity(full, halves int) float64 {
	return float64(full) + float64(halves/2) + 0.5*float64(halves%2)
}

// Compute aggregates a plan into a Summary using the given rates.
func Compute(plan model.CutPlan, rates Rates) Summary {
	summary := Summary{Currency: rates.Currency}

	for _, name := range plan.MaterialOrder {
		usage := MaterialUsage{Material: plan.Materials[name]}
		for _, b := range plan.Boards[name] {
			switch b.Classify() {
			case model.BoardNarrowHalf:
				usage.NarrowHalves++
			case model.BoardWideHalf:
				usage.WideHalves++
			default:
				usage.FullBoards++
			}
		}
		usage.BilledQuantity = BilledQuantity(usage.FullBoards, usage.NarrowHalves+usage.WideHalves)
		usage.Cost = usage.BilledQuantity * usage.Material.Cost
		summary.GrandTotal += usage.Cost
		summary.Usages = append(summary.Usages, usage)
	}

	for _, b := range plan.AllBoards() {
		summary.TotalCutLengthMM += b.CutLength()
		for _, p := range b.PlacedItems {
			summary.TotalWrapLengthMM += WrapLength(p)
		}
	}

	summary.TotalCutCost = summary.TotalCutLengthMM * rates.CutCostPerMM
	summary.TotalWrapCost = summary.TotalWrapLengthMM * rates.WrapCostPerMM
	summary.GrandTotal += summary.TotalCutCost + summary.TotalWrapCost

	return summary
}
