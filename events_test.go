package implicant

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogSinkRendersLearnedClauseOnPostResolve(t *testing.T) {
	var buf bytes.Buffer
	sink := LogSink{Logger: log.New(&buf, "", 0)}

	x := &Variable{Name: "x"}
	learned := NewClause(Literal{Var: x, Positive: false})
	sink.Emit(Event{RunID: "run1", Kind: PostResolve, Level: 2, Learned: learned, Success: true})

	out := buf.String()
	require.Contains(t, out, "op=post-resolve")
	require.Contains(t, out, "learned=")
	require.Contains(t, out, "x") // the pretty-printed literal names its variable
}

func TestLogSinkPostResolveWithoutLearnedClauseOmitsLearnedField(t *testing.T) {
	var buf bytes.Buffer
	sink := LogSink{Logger: log.New(&buf, "", 0)}

	sink.Emit(Event{RunID: "run1", Kind: PostResolve, Level: 0, Success: false})

	out := buf.String()
	require.Contains(t, out, "op=post-resolve")
	require.NotContains(t, out, "learned=")
}

func TestLogSinkPostDecideIncludesVariable(t *testing.T) {
	var buf bytes.Buffer
	sink := LogSink{Logger: log.New(&buf, "", 0)}

	x := &Variable{Name: "x"}
	sink.Emit(Event{RunID: "run1", Kind: PostDecide, Level: 1, Var: x, Value: true, Success: true})

	out := buf.String()
	require.Contains(t, out, "var=x")
	require.Contains(t, out, "value=true")
}

func TestLogSinkDefaultsToStandardLoggerWhenNil(t *testing.T) {
	sink := LogSink{}
	// Must not panic when no Logger is supplied.
	sink.Emit(Event{Kind: PreBCP, Level: 0})
}

func TestNoopSinkDiscardsEvents(t *testing.T) {
	noopSink{}.Emit(Event{Kind: PreDecide})
}
