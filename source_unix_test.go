//go:build unix

package termbg

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func pipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

// nonblocking reads O_NONBLOCK without going through (*os.File).Fd.
func nonblocking(t *testing.T, fd int) bool {
	t.Helper()
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	require.NoError(t, err)
	return flags&unix.O_NONBLOCK != 0
}

func TestLiveSourceQuery(t *testing.T) {
	r, w := pipe(t)
	src := newLiveSource(r)

	_, err := w.WriteString("\x1b]11;rgb:2e2e/3434/4040\x1b\\")
	require.NoError(t, err)

	c, err := QueryBackground(XtermCompatible, time.Second, src, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x2e2e, G: 0x3434, B: 0x4040}, c)
}

func TestLiveSourcePollTimesOut(t *testing.T) {
	r, _ := pipe(t)
	src := newLiveSource(r)

	ready, err := src.Poll(10 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ready)
}

func TestLiveSourceReportsLoneEscapeWhenIdle(t *testing.T) {
	r, w := pipe(t)
	src := newLiveSource(r)
	_, err := w.Write([]byte{0x1b})
	require.NoError(t, err)

	ready, err := src.Poll(20 * time.Millisecond)
	require.NoError(t, err)
	require.True(t, ready)
	ev, err := src.ReadEvent()
	require.NoError(t, err)
	assert.Equal(t, Key(KeyEsc), ev)
}

func TestLiveSourceEOF(t *testing.T) {
	r, w := pipe(t)
	src := newLiveSource(r)
	require.NoError(t, w.Close())

	_, err := src.Poll(time.Second)
	assert.ErrorIs(t, err, io.EOF)
}

func TestLiveSourceReadRaw(t *testing.T) {
	r, w := pipe(t)
	src := newLiveSource(r)

	buf := make([]byte, 16)
	n, err := src.ReadRaw(buf, 5*time.Millisecond)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = w.WriteString("\x1b[0n")
	require.NoError(t, err)
	n, err = src.ReadRaw(buf, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[0n", string(buf[:n]))
}

func TestNonblockingSource(t *testing.T) {
	r, w := pipe(t)
	src, err := NewNonblockingSource(r)
	require.NoError(t, err)

	assert.True(t, nonblocking(t, src.fd), "descriptor switched to non-blocking")

	_, err = w.WriteString("\x1b]11;rgb:ffff/ffff/ffff\x07")
	require.NoError(t, err)
	c, err := QueryBackground(XtermCompatible, time.Second, src, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0xffff, G: 0xffff, B: 0xffff}, c)

	_, err = w.WriteString("\x1b[0n")
	require.NoError(t, err)
	buf := make([]byte, 16)
	n, err := src.ReadRaw(buf, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[0n", string(buf[:n]))

	closed := make(chan error, 1)
	go func() { closed <- src.Close() }()
	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not stop the reader")
	}

	assert.False(t, nonblocking(t, src.fd), "blocking mode restored")

	// The caller's file stays open.
	_, err = w.WriteString("x")
	assert.NoError(t, err)
	assert.NoError(t, src.Close(), "second Close is a no-op")
}

func TestNonblockingSourceDetector(t *testing.T) {
	r, w := pipe(t)
	src, err := NewNonblockingSource(r)
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })

	mode := &fakeMode{}
	d := NewDetector(
		WithEnv(envMap(nil)),
		WithPlatform(false, true),
		WithInteractive(true),
		WithRawMode(mode),
		WithSource(src),
		WithOutput(io.Discard),
		WithDrainInterval(time.Millisecond),
	)

	_, err = w.WriteString("\x1b]11;rgb:0000/0000/0000\x1b\\")
	require.NoError(t, err)
	th, err := d.DetectTheme(time.Second)
	require.NoError(t, err)
	assert.Equal(t, Dark, th)
	assert.False(t, mode.raw)
}

func TestNonblockingSourceSurvivesNewDetector(t *testing.T) {
	r, _ := pipe(t)
	stdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = stdin })

	src, err := NewNonblockingSource(os.Stdin)
	require.NoError(t, err)
	t.Cleanup(func() { src.Close() })
	require.True(t, nonblocking(t, src.fd))

	// The default raw-mode switch and interactive check both look at stdin.
	d := NewDetector(WithSource(src))
	assert.True(t, nonblocking(t, src.fd), "building a detector keeps O_NONBLOCK")
	d.interactive()
	assert.True(t, nonblocking(t, src.fd), "the interactive check keeps O_NONBLOCK")

	require.NoError(t, unix.SetNonblock(src.fd, false))
	_, err = src.ReadRaw(make([]byte, 4), time.Millisecond)
	require.NoError(t, err)
	assert.True(t, nonblocking(t, src.fd), "reads put O_NONBLOCK back")
}
