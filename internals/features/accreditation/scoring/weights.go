// file: internals/features/accreditation/scoring/weights.go
package scoring

import (
	"math"

	"github.com/google/uuid"
)

const weightTolerance = 1e-6

type StandardWeight struct {
	StandardID           uuid.UUID `json:"standard_id"`
	Code                 string    `json:"standard_code"`
	Weight               float64   `json:"weight"`
	IndicatorCount       int       `json:"indicator_count"`
	IndicatorTotalWeight float64   `json:"indicator_total_weight"`
	AlwaysZero           bool      `json:"always_zero"`
}

// WeightReport describes whether standard weights reconcile to the scheme total.
// It is advisory only; Simulate never consults it.
type WeightReport struct {
	ExpectedTotal float64          `json:"expected_total"`
	ActualTotal   float64          `json:"actual_total"`
	Difference    float64          `json:"difference"`
	Reconciled    bool             `json:"reconciled"`
	Standards     []StandardWeight `json:"standards"`
}

func CheckWeights(scheme Scheme) WeightReport {
	rep := WeightReport{
		ExpectedTotal: scheme.TotalWeight,
		Standards:     make([]StandardWeight, 0, len(scheme.Standards)),
	}
	for _, std := range scheme.Standards {
		sw := StandardWeight{StandardID: std.ID, Code: std.Code, Weight: std.Weight}
		for _, el := range std.Elements {
			for _, ind := range el.Indicators {
				sw.IndicatorCount++
				sw.IndicatorTotalWeight += ind.Weight
			}
		}
		sw.AlwaysZero = sw.IndicatorTotalWeight == 0
		rep.ActualTotal += std.Weight
		rep.Standards = append(rep.Standards, sw)
	}
	rep.Difference = rep.ActualTotal - rep.ExpectedTotal
	rep.Reconciled = math.Abs(rep.Difference) <= weightTolerance
	return rep
}
