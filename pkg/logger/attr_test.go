package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsm/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("transition", slog.String("from", "idle"), slog.String("to", "loading"))
	require.Equal(t, "transition", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "from", g[0].Key)
	assert.Equal(t, "to", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestTransitionAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{name: "machine", attr: logger.Machine("loader"), key: "machine", want: "loader"},
		{name: "state", attr: logger.State("idle"), key: "state", want: "idle"},
		{name: "from", attr: logger.FromState("idle"), key: "from", want: "idle"},
		{name: "event", attr: logger.Event("start"), key: "event", want: "start"},
		{name: "component", attr: logger.Component("cli"), key: "component", want: "cli"},
		{name: "run id", attr: logger.RunID("abc"), key: "run_id", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestRunIDNil(t *testing.T) {
	assert.True(t, logger.RunID(nil).Equal(slog.Attr{}))
}
