package dosdate

import (
	"errors"
	"fmt"
)

// BaseYear is the MS-DOS epoch year. All packed years are relative to it.
const BaseYear = 1980

// These errors are matched by a *DecodeError of the corresponding Kind using errors.Is.
var (
	ErrInvalidMonth  = errors.New("invalid month")
	ErrInvalidDay    = errors.New("invalid day")
	ErrDayOutOfRange = errors.New("day out of range")
)

// ErrorKind tells which validation rejected a packed date.
type ErrorKind uint8

const (
	InvalidMonth ErrorKind = iota + 1
	InvalidDay
	DayOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidMonth:
		return "InvalidMonth"
	case InvalidDay:
		return "InvalidDay"
	case DayOutOfRange:
		return "DayOutOfRange"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// DecodeError is returned by Decode if the packed date does not pass validation.
// Which fields are set depends on the Kind:
//  InvalidMonth:  Month
//  InvalidDay:    Day
//  DayOutOfRange: Day, Month and Max
type DecodeError struct {
	Kind  ErrorKind
	Day   uint8
	Month uint8
	Max   uint8
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case InvalidMonth:
		return fmt.Sprintf("Invalid month: %d. Month must be between 1 and 12.", e.Month)
	case InvalidDay:
		return fmt.Sprintf("Invalid day: %d. Day must be between 1 and 31.", e.Day)
	case DayOutOfRange:
		return fmt.Sprintf("Day %d is out of range for month %d. Allowed day range is 1-%d.", e.Day, e.Month, e.Max)
	}
	return fmt.Sprintf("invalid dos date (%v)", e.Kind)
}

// Is reports whether target is the sentinel error of the same kind.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrInvalidMonth:
		return e.Kind == InvalidMonth
	case ErrInvalidDay:
		return e.Kind == InvalidDay
	case ErrDayOutOfRange:
		return e.Kind == DayOutOfRange
	}
	return false
}

// DateComponents is a validated MS-DOS date.
type DateComponents struct {
	Year     uint16 `json:"year" yaml:"year"`
	Month    uint8  `json:"month" yaml:"month"`
	Day      uint8  `json:"day" yaml:"day"`
	BaseYear uint16 `json:"base_year_for_calculation" yaml:"base_year_for_calculation"`
}

func (c DateComponents) String() string {
	return formatDate(c)
}

// Decode reads the given input as a date like it is specified for FAT directory entries and ZIP headers:
//  Bits 0–4: Day of month, valid value range 1-31 inclusive.
//  Bits 5–8: Month of year, 1 = January, valid value range 1–12 inclusive.
//  Bits 9–15: Count of years from 1980, valid value range 0–127 inclusive
//  (1980–2107).
//
// The month is checked before the day. February always allows 29 days, leap years
// are not distinguished. The year is never rejected.
//
// On failure the returned error is a *DecodeError.
func Decode(input uint16) (DateComponents, error) {
	dayOfMonth := uint8(input & 0x1F)
	monthOfYear := uint8(input & 0x1E0 >> 5)
	yearSince1980 := input & 0xFE00 >> 9

	if monthOfYear == 0 || monthOfYear > 12 {
		return DateComponents{}, &DecodeError{Kind: InvalidMonth, Month: monthOfYear}
	}
	if dayOfMonth == 0 {
		return DateComponents{}, &DecodeError{Kind: InvalidDay, Day: dayOfMonth}
	}

	maxDay := DaysInMonth(monthOfYear)
	if dayOfMonth > maxDay {
		return DateComponents{}, &DecodeError{Kind: DayOutOfRange, Day: dayOfMonth, Month: monthOfYear, Max: maxDay}
	}

	return DateComponents{
		Year:     BaseYear + yearSince1980,
		Month:    monthOfYear,
		Day:      dayOfMonth,
		BaseYear: BaseYear,
	}, nil
}

// DaysInMonth returns the highest day Decode accepts for the given month.
// February has always 29 days. It returns 0 for months outside of 1-12.
func DaysInMonth(month uint8) uint8 {
	switch month {
	case 2:
		return 29
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	}
	return 0
}

// Encode packs the components back into the 16-bit DOS date field.
// Only the low bits of each field are used, so components which did not come from
// Decode may not survive a round trip.
func Encode(c DateComponents) uint16 {
	return (c.Year-BaseYear)&0x7F<<9 | uint16(c.Month&0x0F)<<5 | uint16(c.Day&0x1F)
}
