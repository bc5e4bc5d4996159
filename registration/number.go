package registration

import (
	"fmt"
	"strconv"
)

const (
	yearWidth     = 4
	sequenceWidth = 5

	// NumberWidth is the length of every registration number.
	NumberWidth = yearWidth + sequenceWidth

	MaxSequence = 99999
)

// Number is a registration number: a 4-digit year followed by a 5-digit
// zero-padded sequence, e.g. 202200032.
type Number struct {
	Year     int
	Sequence int
}

// ParseNumber parses a 9-digit registration number.
func ParseNumber(s string) (Number, error) {
	if len(s) != NumberWidth {
		return Number{}, fmt.Errorf("%w: %q is not %d digits", ErrInvalidRegistrationNumber, s, NumberWidth)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Number{}, fmt.Errorf("%w: %q contains a non-digit", ErrInvalidRegistrationNumber, s)
		}
	}

	year, _ := strconv.Atoi(s[:yearWidth])
	seq, _ := strconv.Atoi(s[yearWidth:])
	return Number{Year: year, Sequence: seq}, nil
}

// FirstOfYear is the seed number for a hospital with no registrations in year.
func FirstOfYear(year int) Number {
	return Number{Year: year, Sequence: 1}
}

// Next keeps the year and increments the sequence.
func (n Number) Next() (Number, error) {
	if n.Sequence >= MaxSequence {
		return Number{}, fmt.Errorf("%w: %s", ErrSequenceExhausted, n)
	}
	return Number{Year: n.Year, Sequence: n.Sequence + 1}, nil
}

func (n Number) String() string {
	return fmt.Sprintf("%0*d%0*d", yearWidth, n.Year, sequenceWidth, n.Sequence)
}
