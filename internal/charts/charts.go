package charts

// VolumeSeries pairs workout days with their total lifted volume in
// kilograms, ready for a line chart.
type VolumeSeries struct {
	Dates   []string  `json:"dates"`
	Volumes []float64 `json:"volumes"`
}

// YearlySeries always spans 12 months, zero volume for months without
// workouts.
type YearlySeries struct {
	Months  []string  `json:"months"`
	Volumes []float64 `json:"volumes"`
}

// CalendarDay is one workout day in the monthly calendar view.
type CalendarDay struct {
	Date        string  `json:"date"`
	Volume      float64 `json:"volume"`
	RoutineName string  `json:"routine_name"`
}

type CalendarResponse struct {
	Days []CalendarDay `json:"days"`
}
