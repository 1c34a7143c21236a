package domain

// DepartmentCounts holds per-collection document counts for one department.
type DepartmentCounts struct {
	Department  Department
	Collections map[Collection]int
}

// Total returns the number of documents across all collections.
func (c DepartmentCounts) Total() int {
	total := 0
	for _, n := range c.Collections {
		total += n
	}
	return total
}

// SeedReport summarises the state of every department store after a run.
// It is observational only.
type SeedReport struct {
	// RunID identifies the run that produced the report. Empty for a
	// status-only report.
	RunID string

	// Episode is the context the run seeded.
	Episode Episode

	// Departments holds counts in seeding order.
	Departments []DepartmentCounts
}

// Total returns the number of documents across all departments.
func (r *SeedReport) Total() int {
	total := 0
	for _, d := range r.Departments {
		total += d.Total()
	}
	return total
}
