// Package ldbstore keeps a finished strategy table on disk in a LevelDB
// database, so that individual histories can be looked up later without
// decoding the whole table.
package ldbstore

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/timpalpant/go-dcfr"
)

const strategyPrefix = "s:"

// Store is a strategy table backed by a LevelDB database. Each public
// history is stored under its own key.
type Store struct {
	path string
	db   *leveldb.DB

	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

// Open opens (or creates) the database at path.
func Open(path string, opts *opt.Options) (*Store, error) {
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open strategy store %s", path)
	}

	return &Store{path: path, db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores the entry for history h.
func (s *Store) Put(h cfr.History, entry [][]float64) error {
	return s.db.Put(key(h), encodeEntry(entry), s.wOpts)
}

// Get returns the entry for history h. The boolean is false if h is not stored.
func (s *Store) Get(h cfr.History) ([][]float64, bool, error) {
	buf, err := s.db.Get(key(h), s.rOpts)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	} else if err != nil {
		return nil, false, errors.Wrapf(err, "get history %v", h)
	}

	entry, err := decodeEntry(buf)
	if err != nil {
		return nil, false, errors.Wrapf(err, "decode history %v", h)
	}

	return entry, true, nil
}

// WriteTable stores every entry of table in a single batch.
func (s *Store) WriteTable(table cfr.StrategyTable) error {
	batch := new(leveldb.Batch)
	for h, entry := range table {
		batch.Put(key(h), encodeEntry(entry))
	}

	if err := s.db.Write(batch, s.wOpts); err != nil {
		return errors.Wrapf(err, "write %d histories to %s", len(table), s.path)
	}

	glog.V(1).Infof("Wrote %d histories to %s", len(table), s.path)
	return nil
}

// ReadTable loads every stored history.
func (s *Store) ReadTable() (cfr.StrategyTable, error) {
	table := make(cfr.StrategyTable)
	iter := s.db.NewIterator(util.BytesPrefix([]byte(strategyPrefix)), s.rOpts)
	defer iter.Release()
	for iter.Next() {
		h := cfr.History(iter.Key()[len(strategyPrefix):])
		entry, err := decodeEntry(iter.Value())
		if err != nil {
			return nil, errors.Wrapf(err, "decode history %v", h)
		}

		table[h] = entry
	}

	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate strategy store")
	}

	return table, nil
}

func key(h cfr.History) []byte {
	return []byte(strategyPrefix + string(h))
}

// encodeEntry lays out an action-major matrix as two little-endian uint32
// dimensions followed by the float64 values.
func encodeEntry(entry [][]float64) []byte {
	nActions := len(entry)
	nHands := 0
	if nActions > 0 {
		nHands = len(entry[0])
	}

	result := make([]byte, 8+8*nActions*nHands)
	binary.LittleEndian.PutUint32(result[0:], uint32(nActions))
	binary.LittleEndian.PutUint32(result[4:], uint32(nHands))
	buf := result[8:]
	for _, v := range entry {
		for _, x := range v {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(x))
			buf = buf[8:]
		}
	}

	return result
}

func decodeEntry(buf []byte) ([][]float64, error) {
	if len(buf) < 8 {
		return nil, fmt.Errorf("invalid encoded entry has len %d", len(buf))
	}

	nActions := int(binary.LittleEndian.Uint32(buf[0:]))
	nHands := int(binary.LittleEndian.Uint32(buf[4:]))
	buf = buf[8:]
	if len(buf) != 8*nActions*nHands {
		return nil, fmt.Errorf("invalid encoded entry: %dx%d values in %d bytes",
			nActions, nHands, len(buf))
	}

	entry := make([][]float64, nActions)
	for a := range entry {
		entry[a] = make([]float64, nHands)
		for i := range entry[a] {
			entry[a][i] = math.Float64frombits(binary.LittleEndian.Uint64(buf))
			buf = buf[8:]
		}
	}

	return entry, nil
}
