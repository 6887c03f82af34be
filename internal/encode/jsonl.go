package encode

import (
	"encoding/json"
	"errors"
	"io"

	"pkg.jsn.cam/walksim/pkg/walk"
)

// Record is one walk as written to the JSONL output: the batch session it
// belongs to, its position within the batch, and its coordinates.
type Record struct {
	Session string `json:"session,omitempty"`
	Index   int    `json:"index"`
	X       []int  `json:"x"`
	Y       []int  `json:"y"`
}

// NewRecord builds the output record for the index-th walk of a session.
func NewRecord(session string, index int, w walk.Walk) Record {
	return Record{Session: session, Index: index, X: w.X, Y: w.Y}
}

// Writer streams records as one JSON object per line.
type Writer struct {
	enc *json.Encoder
}

// NewWriter creates a record writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

// Write emits a single record followed by a newline.
func (w *Writer) Write(rec Record) error {
	return w.enc.Encode(rec)
}

// ReadAll decodes every record from r.
func ReadAll(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); errors.Is(err, io.EOF) {
			return records, nil
		} else if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
