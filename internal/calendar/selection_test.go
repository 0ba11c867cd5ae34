package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
)

func TestRangeState_SwapSymmetry(t *testing.T) {
	a := newAdapter()

	for first := 1; first <= 31; first += 3 {
		for second := 1; second <= 31; second += 4 {
			var s calendar.RangeState[time.Time]
			d1 := day(2021, time.May, first)
			d2 := day(2021, time.May, second)

			assert.Nil(t, s.Pick(a, d1))
			require.True(t, s.Awaiting())
			assert.Equal(t, d1, *s.Begin)
			assert.Equal(t, d1, *s.End)

			r := s.Pick(a, d2)
			require.NotNil(t, r)
			assert.False(t, s.Awaiting())
			assert.LessOrEqual(t, a.CompareDate(r.Begin, r.End), 0)
			assert.Equal(t, *s.Begin, r.Begin)
			assert.Equal(t, *s.End, r.End)
		}
	}

	var s calendar.RangeState[time.Time]
	s.Pick(a, day(2021, time.May, 10))
	r := s.Pick(a, day(2021, time.May, 1))
	assert.Equal(t, calendar.Range[time.Time]{Begin: day(2021, time.May, 1), End: day(2021, time.May, 10)}, *r)

	s.Pick(a, day(2021, time.May, 7))
	r = s.Pick(a, day(2021, time.May, 7))
	assert.Equal(t, r.Begin, r.End, "same date twice is a single-day range")

	s.Pick(a, day(2021, time.May, 7))
	s.Reset()
	assert.False(t, s.Awaiting())
	assert.Nil(t, s.Begin)
	assert.Nil(t, s.End)
}

func TestHighlight_Committed(t *testing.T) {
	h := calendar.Highlight{RangeMode: true, Begin: 10, End: 20, Over: 15}

	assert.True(t, h.IsSemiSelected(15))
	assert.False(t, h.IsSemiSelected(10))
	assert.False(t, h.IsSemiSelected(20))
	assert.False(t, h.IsSemiSelected(21))
	assert.True(t, h.IsBegin(10))
	assert.True(t, h.IsEnd(20))
	assert.False(t, h.IsBetweenOverAndBegin(12), "no preview without a pending begin")
	assert.False(t, h.PreviewOver(15))

	beginOnly := calendar.Highlight{RangeMode: true, Begin: 10}
	assert.True(t, beginOnly.IsSemiSelected(11))
	assert.False(t, beginOnly.IsSemiSelected(9))

	endOnly := calendar.Highlight{RangeMode: true, End: 10}
	assert.True(t, endOnly.IsSemiSelected(5))
	assert.False(t, endOnly.IsSemiSelected(11))

	full := calendar.Highlight{RangeMode: true, RangeFull: true}
	assert.True(t, full.IsSemiSelected(1))
	assert.True(t, full.IsSemiSelected(31))

	single := calendar.Highlight{Begin: 10, End: 20, RangeFull: true}
	assert.False(t, single.IsSemiSelected(15))
}

func TestHighlight_Preview(t *testing.T) {
	tests := []struct {
		name     string
		h        calendar.Highlight
		between  []int
		outside  []int
		begin    int
		end      int
		notBegin []int
		notEnd   []int
		endNever bool
	}{
		{
			name:     "hover after begin",
			h:        calendar.Highlight{RangeMode: true, BeginSelected: true, Begin: 10, End: 10, Over: 15},
			between:  []int{11, 14},
			outside:  []int{10, 15, 9, 16},
			begin:    10,
			end:      15,
			notEnd:   []int{10},
			notBegin: []int{15},
		},
		{
			name:     "hover before begin",
			h:        calendar.Highlight{RangeMode: true, BeginSelected: true, Begin: 10, End: 10, Over: 5},
			between:  []int{6, 9},
			outside:  []int{5, 10, 4, 11},
			begin:    5,
			end:      10,
			notBegin: []int{10},
		},
		{
			name:     "pending begin in a later month",
			h:        calendar.Highlight{RangeMode: true, BeginSelected: true, BeforeSelected: true, Over: 20},
			between:  []int{21, 31},
			outside:  []int{20, 19, 1},
			begin:    20,
			endNever: true,
		},
		{
			name:    "pending begin in an earlier month",
			h:       calendar.Highlight{RangeMode: true, BeginSelected: true, Over: 20},
			between: []int{1, 19},
			outside: []int{20, 21},
			end:     20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, d := range tt.between {
				assert.True(t, tt.h.IsBetweenOverAndBegin(d), "day %d", d)
			}
			for _, d := range tt.outside {
				assert.False(t, tt.h.IsBetweenOverAndBegin(d), "day %d", d)
			}
			if tt.begin != 0 {
				assert.True(t, tt.h.IsBegin(tt.begin))
			}
			if tt.end != 0 {
				assert.True(t, tt.h.IsEnd(tt.end))
			}
			for _, d := range tt.notBegin {
				assert.False(t, tt.h.IsBegin(d), "day %d", d)
			}
			for _, d := range tt.notEnd {
				assert.False(t, tt.h.IsEnd(d), "day %d", d)
			}
			if tt.endNever {
				for d := 1; d <= 31; d++ {
					assert.False(t, tt.h.IsEnd(d))
				}
			}
			assert.True(t, tt.h.PreviewOver(tt.h.Over))
		})
	}
}

// TestHighlight_PreviewMatchesCommit checks that the hover preview draws the
// range the second click commits.
func TestHighlight_PreviewMatchesCommit(t *testing.T) {
	a := newAdapter()

	for first := 1; first <= 30; first++ {
		for over := 1; over <= 30; over++ {
			h := calendar.Highlight{RangeMode: true, BeginSelected: true, Begin: first, End: first, Over: over}

			var s calendar.RangeState[time.Time]
			s.Pick(a, day(2021, time.April, first))
			r := s.Pick(a, day(2021, time.April, over))

			begin, end := r.Begin.Day(), r.End.Day()
			assert.True(t, h.IsBegin(begin), "first %d over %d", first, over)
			assert.True(t, h.IsEnd(end) || begin == end, "first %d over %d", first, over)
			for d := begin + 1; d < end; d++ {
				assert.True(t, h.IsBetweenOverAndBegin(d), "first %d over %d day %d", first, over, d)
			}
		}
	}
}
