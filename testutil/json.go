package testutil

import (
	"bufio"
	"bytes"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

// UnmarshalJSON unmarshals the provide JSON data into the given interface fatally terminating the current test in the
// even of a failure.
func UnmarshalJSON(t *testing.T, dJSON []byte, data interface{}) {
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(dJSON, data))
}

// DecodeJSONLines decodes each non-empty line of the given output into a map, fatally terminating the current test if
// any line is not a JSON object.
func DecodeJSONLines(t *testing.T, output []byte) []map[string]any {
	var (
		entries = make([]map[string]any, 0)
		scanner = bufio.NewScanner(bytes.NewReader(output))
	)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry map[string]any

		UnmarshalJSON(t, line, &entry)

		entries = append(entries, entry)
	}

	require.NoError(t, scanner.Err())

	return entries
}
