package battlesearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battlesearch/battlesearch-go/pkg/battlesearch/task"
)

func TestQueue_FIFO(t *testing.T) {
	q := newQueue()
	for _, p := range []string{"a", "b", "c"} {
		require.NoError(t, q.push(task.NewFile(p, "x")))
	}
	assert.Equal(t, 3, q.len())

	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.pop()
		require.True(t, ok)
		assert.Equal(t, want, got.Path)
	}
	assert.Equal(t, 0, q.len())
}

func TestQueue_PopBlocksUntilPush(t *testing.T) {
	q := newQueue()
	got := make(chan Task, 1)
	go func() {
		tk, _ := q.pop()
		got <- tk
	}()

	select {
	case <-got:
		t.Fatal("pop returned before push")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, q.push(task.NewFile("a", "x")))
	select {
	case tk := <-got:
		assert.Equal(t, "a", tk.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for pop")
	}
}

func TestQueue_CloseDrainsThenStops(t *testing.T) {
	q := newQueue()
	require.NoError(t, q.push(task.NewFile("a", "x")))
	q.close()

	assert.ErrorIs(t, q.push(task.NewFile("b", "x")), ErrQueueClosed)

	tk, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, "a", tk.Path)

	_, ok = q.pop()
	assert.False(t, ok)
}

func TestQueue_CloseWakesBlockedPop(t *testing.T) {
	q := newQueue()
	done := make(chan bool, 1)
	go func() {
		_, ok := q.pop()
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	q.close()
	q.close() // second close is a no-op

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("close did not wake pop")
	}
}

func TestQueue_ReusesBufferAfterDrain(t *testing.T) {
	q := newQueue()
	for round := 0; round < 3; round++ {
		for i := 0; i < 10; i++ {
			require.NoError(t, q.push(task.NewFile("f", "x")))
		}
		for i := 0; i < 10; i++ {
			_, ok := q.pop()
			require.True(t, ok)
		}
		assert.Equal(t, 0, q.len())
	}
}
