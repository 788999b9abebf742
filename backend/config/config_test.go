package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-logging/log"
)

func TestFromEnv(t *testing.T) {
	type test struct {
		name     string
		env      map[string]string
		expected Config
	}

	tests := []test{
		{
			name:     "Defaults",
			expected: Config{Level: log.LevelInfo, Format: FormatText, Output: "stderr"},
		},
		{
			name: "AllSet",
			env: map[string]string{
				LevelVar:  "debug",
				FormatVar: " JSON ",
				OutputVar: "stdout",
				CallerVar: "true",
			},
			expected: Config{Level: log.LevelDebug, Format: FormatJSON, Output: "stdout", Caller: true},
		},
		{
			name:     "InvalidLevel",
			env:      map[string]string{LevelVar: "loud"},
			expected: Config{Level: log.LevelInfo, Format: FormatText, Output: "stderr"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, name := range []string{LevelVar, FormatVar, OutputVar, CallerVar} {
				t.Setenv(name, test.env[name])
			}

			require.Equal(t, test.expected, FromEnv())
		})
	}
}

func TestWriter(t *testing.T) {
	require.Equal(t, os.Stderr, Config{}.Writer())
	require.Equal(t, os.Stderr, Config{Output: "STDERR"}.Writer())
	require.Equal(t, os.Stdout, Config{Output: "stdout"}.Writer())
}

func TestWriterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backend.log")

	w := Config{Output: path}.Writer()

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = w.Write([]byte("first\n"))
	require.NoError(t, err)

	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\n", string(data))
}
