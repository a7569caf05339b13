package bodystats

import "time"

// BodyStat is one body composition entry. A user can log at most one
// entry per calendar day; all measurements are optional.
type BodyStat struct {
	ID                int       `json:"id"`
	UserID            int       `json:"-"`
	Date              time.Time `json:"date"`
	WeightKg          *float64  `json:"weight_kg"`
	WaistCm           *float64  `json:"waist_cm"`
	HipsCm            *float64  `json:"hips_cm"`
	BreastCm          *float64  `json:"breast_cm"`
	BodyFatPercentage *float64  `json:"body_fat_percentage"`
	CreatedAt         time.Time `json:"created_at"`
}

// MonthAverage holds the averaged measurements of one calendar month.
// Months without entries keep nil averages.
type MonthAverage struct {
	Month                int      `json:"month"`
	AvgWeightKg          *float64 `json:"avg_weight_kg"`
	AvgWaistCm           *float64 `json:"avg_waist_cm"`
	AvgHipsCm            *float64 `json:"avg_hips_cm"`
	AvgBreastCm          *float64 `json:"avg_breast_cm"`
	AvgBodyFatPercentage *float64 `json:"avg_body_fat_percentage"`
}
