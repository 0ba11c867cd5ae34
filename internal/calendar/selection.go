package calendar

// Range is a committed pair of dates with Begin not after End.
type Range[D any] struct {
	Begin D
	End   D
}

// Comparer orders dates; see dateadapter.DateAdapter.CompareDate.
type Comparer[D any] interface {
	CompareDate(first, second D) int
}

// RangeState is the two-click range selection. Pending holds the first click
// while the second endpoint is awaited; Begin and End hold the last committed
// (or provisional) endpoints.
type RangeState[D any] struct {
	Begin   *D
	End     *D
	Pending *D
}

// Awaiting reports whether a first endpoint waits for the second click.
func (s *RangeState[D]) Awaiting() bool {
	return s.Pending != nil
}

// Pick feeds a clicked date into the state machine. It returns the committed
// range after a second click and nil after a first one.
func (s *RangeState[D]) Pick(c Comparer[D], date D) *Range[D] {
	if s.Pending == nil {
		s.Pending = &date
		s.Begin = &date
		s.End = &date
		return nil
	}

	s.Pending = nil
	switch {
	case s.Begin == nil:
		s.Begin = &date
		s.End = &date
	case c.CompareDate(*s.Begin, date) <= 0:
		s.End = &date
	default:
		s.End = s.Begin
		s.Begin = &date
	}
	return &Range[D]{Begin: *s.Begin, End: *s.End}
}

// Reset clears both endpoints and any pending click.
func (s *RangeState[D]) Reset() {
	s.Begin = nil
	s.End = nil
	s.Pending = nil
}

// Highlight carries the range rendering inputs of a month grid. Begin, End
// and Over are day numbers within the shown month; 0 means the date is absent
// or outside the month.
type Highlight struct {
	RangeMode bool

	// RangeFull is set when the whole month lies strictly inside the range.
	RangeFull bool

	Begin int
	End   int

	// BeginSelected is set while the second click is awaited.
	BeginSelected bool

	// BeforeSelected is set when the active date precedes the pending begin.
	BeforeSelected bool

	// Over is the hovered day, or the active day when nothing is hovered.
	Over int
}

// IsSemiSelected reports whether the day is strictly inside the range.
func (h Highlight) IsSemiSelected(day int) bool {
	if !h.RangeMode {
		return false
	}
	if h.RangeFull {
		return true
	}
	if day == h.Begin || day == h.End {
		return false
	}
	if h.Begin != 0 && h.End == 0 {
		return day > h.Begin
	}
	if h.End != 0 && h.Begin == 0 {
		return day < h.End
	}
	return day > h.Begin && day < h.End
}

// IsBetweenOverAndBegin reports whether the day lies in the previewed range
// between the pending begin and the hovered day.
func (h Highlight) IsBetweenOverAndBegin(day int) bool {
	if h.Over == 0 || !h.RangeMode || !h.BeginSelected {
		return false
	}
	if h.BeforeSelected && h.Begin == 0 {
		return day > h.Over
	}
	if h.Over > h.Begin {
		return day > h.Begin && day < h.Over
	}
	if h.Over < h.Begin {
		return day < h.Begin && day > h.Over
	}
	return false
}

// IsBegin reports whether the day is drawn as the range start. While the
// second click is awaited, a hovered day before begin takes that role.
func (h Highlight) IsBegin(day int) bool {
	if h.RangeMode && h.BeginSelected && h.Over != 0 {
		if h.BeforeSelected && h.Begin == 0 {
			return h.Over == day
		}
		return (h.Begin == day && !(h.Over < h.Begin)) ||
			(h.Over == day && h.Over < h.Begin)
	}
	return h.Begin == day
}

// IsEnd reports whether the day is drawn as the range end. While the second
// click is awaited, a hovered day after begin takes that role.
func (h Highlight) IsEnd(day int) bool {
	if h.RangeMode && h.BeginSelected && h.Over != 0 {
		if h.BeforeSelected && h.Begin == 0 {
			return false
		}
		return (h.End == day && !(h.Over > h.Begin)) ||
			(h.Over == day && h.Over > h.Begin)
	}
	return h.End == day
}

// PreviewOver reports whether the day is the hovered candidate for the second click.
func (h Highlight) PreviewOver(day int) bool {
	return h.Over == day && h.RangeMode && h.BeginSelected
}
