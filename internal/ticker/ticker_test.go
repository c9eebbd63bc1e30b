package ticker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPoll_StopsWhenDone(t *testing.T) {
	var calls atomic.Int32
	err := Poll(context.Background(), time.Millisecond, func(time.Time) bool {
		return calls.Add(1) == 3
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPoll_DoneOnFirstCall(t *testing.T) {
	calls := 0
	err := Poll(context.Background(), time.Hour, func(time.Time) bool {
		calls++
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPoll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Poll(ctx, time.Hour, func(time.Time) bool { return false })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStart_StopWaitsForLoop(t *testing.T) {
	var calls atomic.Int32
	stop := Start(context.Background(), time.Millisecond, func(time.Time) bool {
		calls.Add(1)
		return false
	})
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	stop()

	after := calls.Load()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no calls after stop returns")
}
