package equity

import (
	"sync"
	"time"

	"github.com/golang/glog"
)

// DefaultPath is where the table generator writes by default.
const DefaultPath = "static/headsup_preflop_equity.bin"

// Loader loads a table from disk on first use and returns the same table
// to every later caller. It is safe for concurrent use.
type Loader struct {
	path   string
	verify bool

	once  sync.Once
	table *Table
	err   error
}

// NewLoader returns a Loader for the table at path. If verify is true the
// table's invariants are checked once after loading.
func NewLoader(path string, verify bool) *Loader {
	return &Loader{path: path, verify: verify}
}

// Path returns the file the Loader reads from.
func (l *Loader) Path() string {
	return l.path
}

// Get returns the table, loading it if necessary. A failed load is not
// retried: every call returns the same error.
func (l *Loader) Get() (*Table, error) {
	l.once.Do(func() {
		start := time.Now()
		l.table, l.err = Load(l.path)
		if l.err == nil && l.verify {
			l.err = l.table.Verify()
		}

		if l.err != nil {
			l.table = nil
			return
		}

		glog.V(1).Infof("Loaded equity table from %s in %v", l.path, time.Since(start))
	})

	return l.table, l.err
}
