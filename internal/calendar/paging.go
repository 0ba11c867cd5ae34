package calendar

import (
	"github.com/tartampluch/go-rangepicker/internal/config"
	"github.com/tartampluch/go-rangepicker/internal/dateadapter"
)

// StartingYear returns the year anchoring the multi-year pages: the last page
// ends on the max year when max is set, otherwise the first page starts on the
// min year, otherwise pages are aligned on year 0.
func StartingYear[D any](a dateadapter.DateAdapter[D], min, max *D) int {
	switch {
	case max != nil:
		return a.GetYear(*max) - config.YearsPerPage + 1
	case min != nil:
		return a.GetYear(*min)
	default:
		return 0
	}
}

// ActiveOffset returns the slot of the active year within its page, in [0, YearsPerPage).
func ActiveOffset[D any](a dateadapter.DateAdapter[D], active D, min, max *D) int {
	return euclideanMod(a.GetYear(active)-StartingYear(a, min, max), config.YearsPerPage)
}

// IsSameMultiYearView reports whether both dates fall on the same multi-year page.
func IsSameMultiYearView[D any](a dateadapter.DateAdapter[D], d1, d2 D, min, max *D) bool {
	start := StartingYear(a, min, max)
	return floorDiv(a.GetYear(d1)-start, config.YearsPerPage) == floorDiv(a.GetYear(d2)-start, config.YearsPerPage)
}

// MinYearOfPage returns the first year of the page holding active.
func MinYearOfPage[D any](a dateadapter.DateAdapter[D], active D, min, max *D) int {
	return a.GetYear(active) - ActiveOffset(a, active, min, max)
}

func euclideanMod(a, b int) int {
	return (a%b + b) % b
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
