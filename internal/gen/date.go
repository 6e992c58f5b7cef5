package gen

import "fmt"

// Date is a (possibly partial) calendar date. A zero Date means "no date".
// Month and Day may be zero for partial dates like "1874" or "Mar 1874".
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsEmpty reports whether no date component is set.
func (d Date) IsEmpty() bool { return d.Year == 0 && d.Month == 0 && d.Day == 0 }

// SortValue collapses the date into one comparable integer. Partial dates
// sort before complete ones in the same period; the empty date sorts first.
func (d Date) SortValue() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

var monthNames = [...]string{"", "January", "February", "March", "April",
	"May", "June", "July", "August", "September", "October", "November",
	"December"}

var gedcomMonths = [...]string{"", "JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// String renders the date for page display, e.g. "4 March 1874".
func (d Date) String() string {
	switch {
	case d.IsEmpty():
		return ""
	case d.Month == 0:
		return fmt.Sprintf("%d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%s %d", monthNames[d.Month], d.Year)
	}
	return fmt.Sprintf("%d %s %d", d.Day, monthNames[d.Month], d.Year)
}

// Gedcom renders the date in the GEDCOM form used by the GENDEX file,
// e.g. "4 MAR 1874".
func (d Date) Gedcom() string {
	switch {
	case d.IsEmpty():
		return ""
	case d.Month == 0:
		return fmt.Sprintf("%d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%s %d", gedcomMonths[d.Month], d.Year)
	}
	return fmt.Sprintf("%d %s %d", d.Day, gedcomMonths[d.Month], d.Year)
}
