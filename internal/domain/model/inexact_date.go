package model

// InexactDate is a climb date where any suffix of the precision may be unknown.
// Zero means "not set" for each field. JSON keys match the API encoding.
type InexactDate struct {
	Year  int `json:"Year"`
	Month int `json:"Month"`
	Day   int `json:"Day"`
}

// Precision describes which fields of an InexactDate are meaningful.
type Precision int

const (
	// PrecisionNone is an unset date.
	PrecisionNone Precision = iota
	// PrecisionYear is a year-only date.
	PrecisionYear
	// PrecisionMonth is a month and year date.
	PrecisionMonth
	// PrecisionDay is a full date.
	PrecisionDay
	// PrecisionInvalid is any other combination of set and unset fields.
	PrecisionInvalid
)

// Precision classifies the date. Month must be within 1..12 for the month and day forms.
func (d InexactDate) Precision() Precision {
	switch {
	case d.Year == 0 && d.Month == 0 && d.Day == 0:
		return PrecisionNone
	case d.Year != 0 && d.Month == 0 && d.Day == 0:
		return PrecisionYear
	case d.Year != 0 && validMonth(d.Month) && d.Day == 0:
		return PrecisionMonth
	case d.Year != 0 && validMonth(d.Month) && d.Day != 0:
		return PrecisionDay
	default:
		return PrecisionInvalid
	}
}

// IsZero reports whether no field is set.
func (d InexactDate) IsZero() bool { return d.Precision() == PrecisionNone }

func validMonth(m int) bool { return m >= 1 && m <= 12 }
