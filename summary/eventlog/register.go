package eventlog

import (
	"github.com/jonboulle/clockwork"

	"github.com/summarylog/summarylog/summary"
)

func init() {
	summary.NewLogWriterFunc = func(dir string, clock clockwork.Clock) (summary.LogWriter, error) {
		return NewWriter(dir, clock)
	}
	summary.ScanScalarsFunc = ScanScalars
}
