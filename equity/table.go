package equity

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"
)

// TableLen is the number of entries in a complete table.
const TableLen = NumHands * NumHands

// tableSum is the total of all entries in a valid table. The entries for
// (i, j) and (j, i) always sum to 2*NumBoards.
const tableSum = int64(NumHands) * (50 * 49 / 2) * NumBoards

// Table holds, for every ordered pair of hands (i, j), the number of
// boards on which hand i beats hand j counted twice plus the number
// of ties: 2*win + tie. Pairs that share a card are zero.
type Table struct {
	data []int32
}

// NewTable returns a table with every entry zero.
func NewTable() *Table {
	return &Table{data: make([]int32, TableLen)}
}

// At returns the entry for hand i against hand j.
func (t *Table) At(i, j int) int32 {
	return t.data[i*NumHands+j]
}

// Set stores the entry for hand i against hand j.
func (t *Table) Set(i, j int, v int32) {
	t.data[i*NumHands+j] = v
}

// Row returns the entries of hand i against every hand. The result aliases
// the table and must not be modified.
func (t *Table) Row(i int) []int32 {
	return t.data[i*NumHands : (i+1)*NumHands]
}

// Verify checks the structural invariants of the table: card-sharing pairs
// are zero, every entry lies in [0, 2*NumBoards], and the entries sum to
// C(52,2) * C(50,2) * C(48,5).
func (t *Table) Verify() error {
	if len(t.data) != TableLen {
		return errors.Errorf("table has %d entries, expected %d", len(t.data), TableLen)
	}

	var total int64
	for i := 0; i < NumHands; i++ {
		row := t.Row(i)
		for j, v := range row {
			if Overlaps(i, j) {
				if v != 0 {
					return errors.Errorf("entry (%s, %s) = %d for overlapping hands",
						HandString(i), HandString(j), v)
				}
				continue
			}

			if v < 0 || v > 2*NumBoards {
				return errors.Errorf("entry (%s, %s) = %d out of range",
					HandString(i), HandString(j), v)
			}

			total += int64(v)
		}
	}

	if total != tableSum {
		return errors.Errorf("table sums to %d, expected %d", total, tableSum)
	}

	return nil
}

// ReadTable decodes a table in bincode Vec<i32> layout: a little-endian
// uint64 length followed by that many little-endian int32 values.
func ReadTable(r io.Reader) (*Table, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, errors.Wrap(err, "read table length")
	}

	if n != TableLen {
		return nil, errors.Errorf("table length %d, expected %d", n, TableLen)
	}

	t := NewTable()
	if err := binary.Read(r, binary.LittleEndian, t.data); err != nil {
		return nil, errors.Wrap(err, "read table entries")
	}

	return t, nil
}

// WriteTo encodes the table in the layout read by ReadTable.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(t.data))); err != nil {
		return 0, errors.Wrap(err, "write table length")
	}

	if err := binary.Write(w, binary.LittleEndian, t.data); err != nil {
		return 8, errors.Wrap(err, "write table entries")
	}

	return 8 + 4*int64(len(t.data)), nil
}

// Load reads a table from the named file. Files ending in ".zst" are
// zstd-compressed and files ending in ".gz" are gzip-compressed.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open equity table")
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	switch {
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "open zstd stream")
		}
		defer dec.Close()
		r = dec
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip stream")
		}
		defer gr.Close()
		r = gr
	}

	t, err := ReadTable(r)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return t, nil
}

// Save writes the table to the named file, compressing it according to
// the file extension as in Load.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create equity table")
	}

	if err := t.save(f, path); err != nil {
		f.Close()
		return errors.Wrapf(err, "save %s", path)
	}

	return errors.Wrap(f.Close(), "close equity table")
}

func (t *Table) save(f *os.File, path string) error {
	bw := bufio.NewWriter(f)
	var w io.WriteCloser
	switch {
	case strings.HasSuffix(path, ".zst"):
		enc, err := zstd.NewWriter(bw)
		if err != nil {
			return errors.Wrap(err, "open zstd stream")
		}
		w = enc
	case strings.HasSuffix(path, ".gz"):
		w = gzip.NewWriter(bw)
	}

	if w == nil {
		if _, err := t.WriteTo(bw); err != nil {
			return err
		}
		return bw.Flush()
	}

	if _, err := t.WriteTo(w); err != nil {
		w.Close()
		return err
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "close compressed stream")
	}

	return bw.Flush()
}
