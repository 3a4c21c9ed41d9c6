package core

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// cellRecord is the self-describing, one-line-per-cell persistence
// record described in the save/load format: a digit 0-9, a linear
// position 0-80, and the hopeful set at time of save. Futile is not
// persisted; the debug log is not persisted.
type cellRecord struct {
	Value    int   `json:"value"`
	Position int   `json:"position"`
	Hopeful  []int `json:"hopeful"`
}

// Save writes one JSON record per cell, one per line, in position order.
func (f *Field) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	for i := range f.Cells {
		rec := cellRecord{
			Value:    f.Cells[i].Value,
			Position: f.Cells[i].Position.AsIndex(),
			Hopeful:  f.Cells[i].Hopeful.Slice(),
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("save cell %d: %w", i, err)
		}
	}
	return nil
}

// Load replaces this Field's cell state from r: exactly 81 records are
// required, matched to cells by Position. Value is set directly,
// bypassing the usual SetValue precondition; Hopeful is replaced by the
// intersection of {1..9} and the loaded set; Futile and the debug log
// are reset.
func (f *Field) Load(r io.Reader) error {
	records := make(map[int]cellRecord, 81)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec cellRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf("malformed record: %v", err)}
		}
		records[rec.Position] = rec
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if len(records) != 81 {
		return newError(KindInvalidInput, "expected 81 records, got %d", len(records))
	}

	for i := range f.Cells {
		rec, ok := records[f.Cells[i].Position.AsIndex()]
		if !ok {
			return newError(KindInvalidInput, "missing record for position %d", f.Cells[i].Position.AsIndex())
		}
		f.Cells[i].Value = rec.Value
		f.Cells[i].Hopeful = AllDigits().Intersect(NewDigits(rec.Hopeful))
		f.Cells[i].Futile = 0
		f.Cells[i].Debug = nil
	}
	return nil
}
