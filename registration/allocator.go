package registration

import (
	"context"
	"fmt"
	"time"
)

// AllocatorConfig holds the allocation policy.
type AllocatorConfig struct {
	// Now supplies the calendar year for seeds and rollover. Defaults to time.Now.
	Now func() time.Time
	// YearRollover restarts the sequence at 1 when the current year is past
	// the year of the stored maximum. When false the stored year is carried forward.
	YearRollover bool
}

// Allocator computes the next registration number of a hospital from the
// highest number already issued. It does not persist anything.
type Allocator struct {
	numbers      MaxRegistrationNumberReader
	now          func() time.Time
	yearRollover bool
}

func NewAllocator(numbers MaxRegistrationNumberReader, cfg AllocatorConfig) *Allocator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Allocator{
		numbers:      numbers,
		now:          cfg.Now,
		yearRollover: cfg.YearRollover,
	}
}

// Next returns the registration number the next patient of hospitalID gets.
func (a *Allocator) Next(ctx context.Context, hospitalID uint) (string, error) {
	max, err := a.numbers.GetMaxRegistrationNumber(ctx, hospitalID)
	if err != nil {
		return "", fmt.Errorf("read max registration number of hospital %d: %w", hospitalID, err)
	}

	year := a.now().Year()
	if max == "" {
		return FirstOfYear(year).String(), nil
	}

	current, err := ParseNumber(max)
	if err != nil {
		return "", fmt.Errorf("hospital %d: %w", hospitalID, err)
	}
	if a.yearRollover && current.Year < year {
		return FirstOfYear(year).String(), nil
	}

	next, err := current.Next()
	if err != nil {
		return "", fmt.Errorf("hospital %d: %w", hospitalID, err)
	}
	return next.String(), nil
}
