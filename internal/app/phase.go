package app

// Phase tracks where a run is in its lifecycle. A run moves strictly forward:
// Configured → Fetching → Merged → Aggregating → Done, or to Failed when the
// merge yields zero ticks or the conversion yields zero bars. Failed is terminal;
// per-bucket retries were already exhausted inside the fetcher.
type Phase int

const (
	PhaseConfigured Phase = iota
	PhaseFetching
	PhaseMerged
	PhaseAggregating
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseConfigured:
		return "configured"
	case PhaseFetching:
		return "fetching"
	case PhaseMerged:
		return "merged"
	case PhaseAggregating:
		return "aggregating"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
