package commands

import (
	"time"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/discli/internal/core/validate"
)

// PollInput holds the polling settings shared by chat and watch.
type PollInput struct {
	Limit    int
	Interval time.Duration
}

// pollInput fills unset values from the config.
func (f *Flags) pollInput(limit int, interval time.Duration) PollInput {
	in := PollInput{Limit: limit, Interval: interval}
	if in.Limit == 0 {
		in.Limit = f.Config.FetchLimit
	}
	if in.Interval == 0 {
		in.Interval = f.Config.Watch.Interval
	}
	return in
}

// Validate checks the settings before any request is made.
func (in PollInput) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if err := validate.FetchLimit(in.Limit); err != nil {
		errs = errs.Append("limit", err)
	}

	if err := validate.PollInterval(in.Interval); err != nil {
		errs = errs.Append("interval", err)
	}

	return errs.ToError()
}
