package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func written(e *testEnv) string {
	var sb strings.Builder
	for _, call := range e.io.WriteCalls() {
		sb.Write(call.P)
	}
	return sb.String()
}

func TestInspect(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t, "A", "B")

	status := e.run(t, "inspect", "$[*].carName")

	assert.Equal(t, subcommands.ExitSuccess, status)
	var got []string
	require.NoError(t, json.Unmarshal([]byte(written(e)), &got))
	assert.ElementsMatch(t, []string{"A", "B"}, got)
	// inspect только читает
	assert.Empty(t, e.renderer.HistoryChangedCalls())
}

func TestInspect_WholeDocument(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t, "Golf 8")

	assert.Equal(t, subcommands.ExitSuccess, e.run(t, "inspect"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(written(e)), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Golf 8", got[0]["carName"])
	assert.Contains(t, got[0], "breakdown")
}

func TestInspect_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStatus subcommands.ExitStatus
	}{
		{name: "too many args", args: []string{"inspect", "$", "$"}, wantStatus: subcommands.ExitUsageError},
		{name: "invalid query", args: []string{"inspect", "$["}, wantStatus: subcommands.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			e.seed(t, "A")

			assert.Equal(t, tt.wantStatus, e.run(t, tt.args...))
			assert.Empty(t, e.io.WriteCalls())
		})
	}
}
