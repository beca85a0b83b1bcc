package form

type Outcome int

const (
	// OutcomeRejected: empty prompt, nothing was sent.
	OutcomeRejected Outcome = iota
	// OutcomeRendered: the reply was rendered into the response region.
	OutcomeRendered
	// OutcomeReported: the backend's error text was shown verbatim.
	OutcomeReported
	// OutcomeFailed: the generic failure message was shown.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeRendered:
		return "rendered"
	case OutcomeReported:
		return "reported"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
