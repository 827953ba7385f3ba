package domain

// Well-known names of the seeded wellness system tasks. The snapshot
// aggregator resolves weekly wellness stats through these names together
// with the expected input type; a missing task yields a null stat.
const (
	WellnessTaskMood          = "Mood"
	WellnessTaskSleepHours    = "Sleep Hours"
	WellnessTaskSleepQuality  = "Sleep Quality"
	WellnessTaskWeight        = "Weight"
	WellnessTaskSteps         = "Steps"
	WellnessTaskBloodPressure = "Blood Pressure"
)
