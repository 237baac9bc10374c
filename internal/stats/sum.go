package stats

import "time"

// Sum accumulates one calendar day of care activity. Fields only ever
// grow during aggregation; once the fold is done a Sum is read-only.
type Sum struct {
	TotalDiapers   int           `json:"totalDiapers"`
	PooDiapers     int           `json:"pooDiapers"`
	BottleOz       float64       `json:"bottleOz"`
	BottleSessions int           `json:"bottleSessions"`
	BreastDuration time.Duration `json:"breastDuration"`
	PumpingOz      float64       `json:"pumpingOz"`
	TummyTime      time.Duration `json:"tummyTime"`
	MaxSleep       time.Duration `json:"maxSleep"`
	TotalSleep     time.Duration `json:"totalSleep"`
}

// DailyEntry pairs a calendar day with its accumulated totals.
type DailyEntry struct {
	Date Date
	Sum  *Sum
}

// WindowMean is the per-field arithmetic mean of a run of consecutive
// daily entries, labeled by the last day of the run.
type WindowMean struct {
	Date Date
	Mean Sum
}
