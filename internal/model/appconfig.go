package model

// AppConfig holds application-wide preferences and default planning
// settings. Job-level properties files may override individual values.
type AppConfig struct {
	KerfWidth        float64 `json:"kerf_width"`          // saw blade width in mm
	CutCostPerMM     float64 `json:"cut_cost_per_mm"`     // price per mm of saw travel
	WrapCostPerMM    float64 `json:"wrap_cost_per_mm"`    // price per mm of edge banding
	Currency         string  `json:"currency"`            // symbol used in reports
	EnforceWrapRules bool    `json:"enforce_wrap_rules"`  // reject orientations violating banding minimums

	// Application preferences
	RecentJobs []string `json:"recent_jobs"`
}

// maxRecentJobs caps the recent jobs list.
const maxRecentJobs = 10

// AddRecentJob moves or inserts a job path at the front of the recent
// jobs list, dropping the oldest entry past the cap.
func (c *AppConfig) AddRecentJob(path string) {
	jobs := []string{path}
	for _, j := range c.RecentJobs {
		if j == path {
			continue
		}
		jobs = append(jobs, j)
		if len(jobs) == maxRecentJobs {
			break
		}
	}
	c.RecentJobs = jobs
}

// DefaultAppConfig returns an AppConfig populated with the defaults used
// when no config file exists.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		KerfWidth:        4.0,
		CutCostPerMM:     0.0,
		WrapCostPerMM:    0.0,
		Currency:         "zł",
		EnforceWrapRules: true,
		RecentJobs:       []string{},
	}
}
