package timeprovider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFakeTimeProvider(t *testing.T) {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	tp := NewFakeTimeProvider(start)
	require.Equal(t, start, tp.Now())

	tp.AdvanceTimeBy(90 * time.Second)
	require.Equal(t, start.Add(90*time.Second), tp.Now())
}
