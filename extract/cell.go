package extract

import (
	"math"
	"strconv"
	"strings"
)

// Kind classifies a first-column cell.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindText
	KindBool
	KindDate
	KindError
)

var kindNames = [...]string{"empty", "number", "text", "bool", "date", "error"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Cell is the first-column value of one row.
type Cell struct {
	Row   int
	Kind  Kind
	Raw   string
	Value float64
}

// numberCell parses raw as a finite float. ok is false for anything else.
func numberCell(row int, raw string) (Cell, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{Row: row, Kind: KindEmpty}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Cell{Row: row, Kind: KindText, Raw: raw}, false
	}
	return Cell{Row: row, Kind: KindNumber, Raw: raw, Value: f}, true
}

// truncate converts v toward zero. ok is false when the result does not fit
// in an int64.
func truncate(v float64) (int64, bool) {
	t := math.Trunc(v)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int64(t), true
}
