package cfr

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/pkg/errors"
)

// MarshalTo writes the table to w.
//
// This is intended for exporting a finished average strategy so that it can
// be inspected later; regret tables are never persisted across runs.
func (t StrategyTable) MarshalTo(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(len(t)); err != nil {
		return errors.Wrap(err, "encode table size")
	}

	for h, entry := range t {
		if err := enc.Encode(string(h)); err != nil {
			return errors.Wrapf(err, "encode history %v", h)
		}

		if err := enc.Encode(entry); err != nil {
			return errors.Wrapf(err, "encode entry for history %v", h)
		}
	}

	return nil
}

// LoadStrategyTable reads a table previously written with MarshalTo.
func LoadStrategyTable(r io.Reader) (StrategyTable, error) {
	dec := gob.NewDecoder(r)
	var n int
	if err := dec.Decode(&n); err != nil {
		return nil, errors.Wrap(err, "decode table size")
	}

	t := make(StrategyTable, n)
	for i := 0; i < n; i++ {
		var key string
		if err := dec.Decode(&key); err != nil {
			return nil, errors.Wrapf(err, "decode history %d of %d", i, n)
		}

		var entry [][]float64
		if err := dec.Decode(&entry); err != nil {
			return nil, errors.Wrapf(err, "decode entry for history %v", History(key))
		}

		t[History(key)] = entry
	}

	return t, nil
}

// SaveFile writes the table to the named file.
func (t StrategyTable) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create strategy file")
	}

	if err := t.MarshalTo(f); err != nil {
		f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "close strategy file")
}

// LoadStrategyFile reads a table from the named file.
func LoadStrategyFile(path string) (StrategyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open strategy file")
	}
	defer f.Close()

	return LoadStrategyTable(f)
}
