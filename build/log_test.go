package build

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// newTestManager returns a manager whose loggers write to the returned buffer
// only.
func newTestManager(t *testing.T) (*SubLoggerManager, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	manager := &SubLoggerManager{
		backend: btclog.NewBackend(&buf),
		loggers: make(SubLoggers),
	}

	return manager, &buf
}

// TestParseAndSetDebugLevels checks the global and per subsystem level
// syntax.
func TestParseAndSetDebugLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expErr   string
		expLevel map[string]btclog.Level
	}{
		{
			name:  "global",
			level: "debug",
			expLevel: map[string]btclog.Level{
				"CCFG": btclog.LevelDebug,
				"CTSC": btclog.LevelDebug,
			},
		},
		{
			name:  "global and subsystem",
			level: "warn,CCFG=trace",
			expLevel: map[string]btclog.Level{
				"CCFG": btclog.LevelTrace,
				"CTSC": btclog.LevelWarn,
			},
		},
		{
			name:  "subsystem only",
			level: "CTSC=error",
			expLevel: map[string]btclog.Level{
				"CCFG": btclog.LevelInfo,
				"CTSC": btclog.LevelError,
			},
		},
		{
			name:   "invalid global level",
			level:  "loud",
			expErr: "the specified debug level [loud] is invalid",
		},
		{
			name:   "unknown subsystem",
			level:  "info,PEER=debug",
			expErr: "the specified subsystem [PEER] is invalid",
		},
		{
			name:   "invalid subsystem level",
			level:  "CCFG=loud",
			expErr: "the specified debug level [loud] is invalid",
		},
		{
			name:   "missing pair",
			level:  "info,CCFG",
			expErr: "invalid subsystem/level pair [CCFG]",
		},
		{
			name:   "malformed pair",
			level:  "CCFG=info=debug",
			expErr: "invalid format [CCFG=info=debug]",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			manager, _ := newTestManager(t)
			for _, subsystem := range []string{"CCFG", "CTSC"} {
				logger := manager.GenSubLogger(subsystem)
				logger.SetLevel(btclog.LevelInfo)
			}

			err := ParseAndSetDebugLevels(test.level, manager)
			if test.expErr != "" {
				require.ErrorContains(t, err, test.expErr)
				return
			}
			require.NoError(t, err)

			loggers := manager.SubLoggers()
			for subsystem, level := range test.expLevel {
				require.Equal(t, level, loggers[subsystem].Level(),
					subsystem)
			}
		})
	}
}

// TestSubLoggerManager checks registration and output of subsystem loggers.
func TestSubLoggerManager(t *testing.T) {
	t.Parallel()

	manager, buf := newTestManager(t)

	var used btclog.Logger
	logger := manager.RegisterSubLogger("CCFG", func(l btclog.Logger) {
		used = l
	})
	require.NotNil(t, used)
	require.Equal(t, []string{"CCFG"}, manager.SupportedSubsystems())

	// Generating the same subsystem twice yields the same logger.
	require.Equal(t, manager.GenSubLogger("CCFG"), manager.GenSubLogger("CCFG"))

	// Production builds hand out the manager's logger, which writes to
	// the backend.
	if Deployment == Production {
		require.Equal(t, logger, used)

		manager.SetLogLevels("info")
		logger.Infof("hello %v", "world")
		require.True(t, strings.Contains(buf.String(), "[INF] CCFG: hello world"))

		manager.SetLogLevel("CCFG", "off")
		logger.Infof("muted")
		require.False(t, strings.Contains(buf.String(), "muted"))
	}

	// Unknown subsystems are ignored.
	manager.SetLogLevel("NOPE", "trace")
	require.Len(t, manager.SubLoggers(), 1)
}

// TestLogTypeString checks the names of the logging types.
func TestLogTypeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "none", LogTypeNone.String())
	require.Equal(t, "console", LogTypeConsole.String())
	require.Equal(t, "default", LogTypeDefault.String())
	require.Equal(t, "unknown", LogType(9).String())
	require.NotEmpty(t, Version())
}
