// Package doctor runs diagnostic checks for discli: the loaded config, the
// token, and read access to the default channel.
package doctor

import (
	"context"
	"fmt"
	"time"
)

// Status is the outcome of one check item. Items are ordered by severity so
// the worst status of a result is its maximum.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

var statusNames = map[Status]string{
	StatusPass: "pass",
	StatusWarn: "warn",
	StatusFail: "fail",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the status by name in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(name), nil
}

// CheckItem is a single line within a check result.
type CheckItem struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Result is the outcome of one check.
type Result struct {
	Name  string      `json:"name"`
	Items []CheckItem `json:"items"`
	// Elapsed covers the whole check, including any Discord request.
	Elapsed time.Duration `json:"-"`
	// ElapsedMS mirrors Elapsed for JSON output.
	ElapsedMS int64 `json:"elapsed_ms"`
}

// Worst returns the most severe item status, or StatusPass for no items.
func (r Result) Worst() Status {
	worst := StatusPass
	for _, item := range r.Items {
		worst = max(worst, item.Status)
	}
	return worst
}

// Check is a single diagnostic.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// Summary counts item statuses across a report.
type Summary struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

// Report is the combined outcome of a doctor run.
type Report struct {
	Healthy bool     `json:"healthy"`
	Summary Summary  `json:"summary"`
	Checks  []Result `json:"checks"`
}

// RunAll runs the checks in order and summarizes them. The report is healthy
// when no item failed; warnings do not affect health.
func RunAll(ctx context.Context, checks []Check) Report {
	report := Report{Checks: make([]Result, 0, len(checks))}

	for _, check := range checks {
		start := time.Now()
		result := check.Run(ctx)
		result.Elapsed = time.Since(start)
		result.ElapsedMS = result.Elapsed.Milliseconds()

		for _, item := range result.Items {
			switch item.Status {
			case StatusPass:
				report.Summary.Passed++
			case StatusWarn:
				report.Summary.Warned++
			case StatusFail:
				report.Summary.Failed++
			}
		}

		report.Checks = append(report.Checks, result)
	}

	report.Healthy = report.Summary.Failed == 0
	return report
}
