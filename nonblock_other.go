//go:build !unix

package termbg

import (
	"os"
	"time"
)

// NonblockingSource is only available on unix hosts.
type NonblockingSource struct{}

// NewNonblockingSource reports Unsupported outside unix.
func NewNonblockingSource(*os.File) (*NonblockingSource, error) {
	return nil, unsupported("non-blocking descriptors need a unix host")
}

func (*NonblockingSource) Poll(time.Duration) (bool, error)          { return false, ErrUnsupported }
func (*NonblockingSource) ReadEvent() (Event, error)                 { return Event{}, ErrUnsupported }
func (*NonblockingSource) ReadRaw([]byte, time.Duration) (int, error) { return 0, ErrUnsupported }
func (*NonblockingSource) Close() error                              { return nil }
