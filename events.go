package implicant

import (
	"log"

	"github.com/kr/pretty"
)

// EventKind tags the stage a trace Event was emitted from: the pre/post
// boundaries of decide, BCP, and conflict resolution.
type EventKind int8

const (
	PreDecide EventKind = iota
	PostDecide
	PreBCP
	PostBCP
	PreResolve
	PostResolve
)

func (k EventKind) String() string {
	switch k {
	case PreDecide:
		return "pre-decide"
	case PostDecide:
		return "post-decide"
	case PreBCP:
		return "pre-bcp"
	case PostBCP:
		return "post-bcp"
	case PreResolve:
		return "pre-resolve"
	case PostResolve:
		return "post-resolve"
	default:
		return "unknown"
	}
}

// Event is the single payload type emitted at every traced boundary. Not
// every field is meaningful for every Kind: Success is only set on Post*
// events, Var/Value/Antecedent only on events that involve an assignment,
// and Learned only on PostResolve.
type Event struct {
	RunID      string
	Kind       EventKind
	Level      int
	Var        *Variable
	Value      bool
	Antecedent *Clause
	Learned    *Clause
	Success    bool
}

// EventSink receives solver trace events. These hooks exist for testing
// and pedagogy; they must never affect the solver's result. The default
// sink is a no-op.
type EventSink interface {
	Emit(Event)
}

type noopSink struct{}

func (noopSink) Emit(Event) {}

// LogSink adapts an EventSink to the standard logger, rendering one
// terse, single-line record per event.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Emit(e Event) {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	switch e.Kind {
	case PostResolve:
		if e.Learned != nil {
			logger.Printf("run=%s op=%s level=%d success=%t learned=%s",
				e.RunID, e.Kind, e.Level, e.Success, pretty.Sprint(e.Learned.Lits))
		} else {
			logger.Printf("run=%s op=%s level=%d success=%t", e.RunID, e.Kind, e.Level, e.Success)
		}
	case PostDecide, PostBCP:
		if e.Var != nil {
			logger.Printf("run=%s op=%s level=%d var=%s value=%t success=%t",
				e.RunID, e.Kind, e.Level, e.Var.Name, e.Value, e.Success)
		} else {
			logger.Printf("run=%s op=%s level=%d success=%t", e.RunID, e.Kind, e.Level, e.Success)
		}
	default:
		logger.Printf("run=%s op=%s level=%d", e.RunID, e.Kind, e.Level)
	}
}
