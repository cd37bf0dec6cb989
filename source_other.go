//go:build !unix && !windows

package termbg

import (
	"os"
	"time"
)

type liveSource struct{}

func newLiveSource(*os.File) *liveSource { return &liveSource{} }

func (*liveSource) Poll(time.Duration) (bool, error)          { return false, errNoTTY }
func (*liveSource) ReadEvent() (Event, error)                 { return Event{}, errNoTTY }
func (*liveSource) ReadRaw([]byte, time.Duration) (int, error) { return 0, errNoTTY }
