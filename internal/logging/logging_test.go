package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jrsteele09/ainote-client/internal/logging"
	"github.com/stretchr/testify/require"
)

type logCfg struct {
	env   string
	level string
}

func (c logCfg) GetEnv() string      { return c.env }
func (c logCfg) GetLogLevel() string { return c.level }

func TestNew_JSONOutsideDev(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logCfg{env: "PROD", level: "warn"}, &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("path", "/account/me").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	require.Equal(t, "kept", entry["message"])
	require.Equal(t, "/account/me", entry["path"])
	require.Equal(t, "ainote-client", entry["component"])
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logCfg{env: "PROD", level: "chatty"}, &buf)

	log.Debug().Msg("dropped")
	require.Zero(t, buf.Len())
	log.Info().Msg("kept")
	require.NotZero(t, buf.Len())
}

func TestNew_ConsoleInDev(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logCfg{env: "DEV", level: "debug"}, &buf)
	log.Debug().Msg("hello console")
	require.Contains(t, buf.String(), "hello console")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
