package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Version is the current record format version.
// Increment when making breaking changes to Record.
const Version = 1

// Record is one completed conversion.
type Record struct {
	Version   int             `json:"version"`
	ID        uuid.UUID       `json:"id"`
	UnitSet   string          `json:"unit_set"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Input     decimal.Decimal `json:"input"`
	Output    decimal.Decimal `json:"output"`
	Steps     int             `json:"steps"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewRecord creates a record with a fresh ID and the current time.
func NewRecord(unitSet, from, to string, input, output decimal.Decimal, steps int) *Record {
	return &Record{
		Version:   Version,
		ID:        uuid.New(),
		UnitSet:   unitSet,
		From:      from,
		To:        to,
		Input:     input,
		Output:    output,
		Steps:     steps,
		Timestamp: time.Now().UTC(),
	}
}

// String renders the record as "<input><from> = <output><to> (<unit set>)".
func (r *Record) String() string {
	return fmt.Sprintf("%s%s = %s%s (%s)", r.Input, r.From, r.Output, r.To, r.UnitSet)
}

// Marshal serializes a record to JSON.
func (r *Record) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal deserializes a record from JSON.
func Unmarshal(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
