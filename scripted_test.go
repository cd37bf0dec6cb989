package termbg

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedSourceReplaysThenBlocks(t *testing.T) {
	src := NewScriptedSource(Char('a'), Char('b'))

	for _, want := range []rune{'a', 'b'} {
		ready, err := src.Poll(time.Second)
		require.NoError(t, err)
		require.True(t, ready)
		ev, err := src.ReadEvent()
		require.NoError(t, err)
		assert.Equal(t, want, ev.Char)
	}

	start := time.Now()
	ready, err := src.Poll(10 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ready)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := src.ReadEvent()
		done <- err
	}()
	select {
	case <-done:
		t.Fatal("ReadEvent returned on an exhausted source")
	case <-time.After(30 * time.Millisecond):
	}

	require.NoError(t, src.Close())
	select {
	case err := <-done:
		assert.ErrorIs(t, err, io.EOF)
	case <-time.After(time.Second):
		t.Fatal("ReadEvent still blocked after Close")
	}
	assert.Equal(t, 3, src.Polls())
}

func TestScriptedSourceRaw(t *testing.T) {
	src := NewScriptedSource().WithRaw([]byte("abc"))
	buf := make([]byte, 2)

	n, err := src.ReadRaw(buf, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(buf[:n]))

	n, err = src.ReadRaw(buf, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "c", string(buf[:n]))

	n, err = src.ReadRaw(buf, 5*time.Millisecond)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCharEvents(t *testing.T) {
	assert.Equal(t, []Event{Char('o'), Char('k')}, CharEvents("ok"))
	assert.Empty(t, CharEvents(""))
}
