package outcome

import "log"

// LogReporter writes outcomes to the standard logger.
type LogReporter struct{}

// Report implements Reporter.
func (LogReporter) Report(o Outcome) {
	if o.Warning != "" {
		log.Printf("outcome: %s %s warning: %s", o.Kind, o.Target, o.Warning)
	}
	if o.Success {
		log.Printf("outcome: %s %s ok (%s)", o.Kind, o.Target, o.Duration())
		return
	}
	if o.FailedStep > 0 {
		log.Printf("outcome: %s %s failed at step %d (%s): %s", o.Kind, o.Target, o.FailedStep, o.Duration(), o.Error)
		return
	}
	log.Printf("outcome: %s %s failed (%s): %s", o.Kind, o.Target, o.Duration(), o.Error)
}
