package expense

import "time"

// Display layouts. The exported workbook keeps dates and times in these
// exact formats, matching what the table shows.
const (
	DateLayout = "02/01/2006"
	TimeLayout = "15:04:05"
)

type Record struct {
	Amount   float64
	Category string
	Created  time.Time
}

func (r Record) DateString() string {
	return r.Created.Format(DateLayout)
}

func (r Record) TimeString() string {
	return r.Created.Format(TimeLayout)
}
