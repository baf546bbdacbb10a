package domain

import "github.com/pulsepress/discovery/internal/apperr"

type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
	DateRangeYear  DateRange = "year"
)

type ReadTimeBucket string

const (
	ReadTimeAll ReadTimeBucket = "all"
	// ReadTimeShort is under 5 minutes, ReadTimeMedium 5-15 inclusive,
	// ReadTimeLong over 15.
	ReadTimeShort  ReadTimeBucket = "short"
	ReadTimeMedium ReadTimeBucket = "medium"
	ReadTimeLong   ReadTimeBucket = "long"
)

type SortMode string

const (
	SortLatest     SortMode = "latest"
	SortPopular    SortMode = "popular"
	SortTrending   SortMode = "trending"
	SortMostViewed SortMode = "mostViewed"
	SortMostLiked  SortMode = "mostLiked"
)

// SearchFilters narrows and orders a search candidate set. Empty membership
// sets and the "all" buckets impose no restriction.
type SearchFilters struct {
	Categories []string       `json:"categories,omitempty" query:"categories"`
	Tags       []string       `json:"tags,omitempty" query:"tags"`
	Authors    []string       `json:"authors,omitempty" query:"authors"`
	DateRange  DateRange      `json:"dateRange,omitempty" query:"dateRange"`
	ReadTime   ReadTimeBucket `json:"readTime,omitempty" query:"readTime"`
	SortBy     SortMode       `json:"sortBy,omitempty" query:"sortBy"`
}

// WithDefaults returns a copy with zero-value enum fields normalized to
// their identity values. Unknown values are left for Validate to reject.
func (f SearchFilters) WithDefaults() SearchFilters {
	if f.DateRange == "" {
		f.DateRange = DateRangeAll
	}
	if f.ReadTime == "" {
		f.ReadTime = ReadTimeAll
	}
	if f.SortBy == "" {
		f.SortBy = SortLatest
	}
	return f
}

// Validate rejects enum values outside their recognized sets. Silently
// defaulting an unknown sortBy would produce confusing ranking behavior,
// so the request fails instead.
func (f SearchFilters) Validate() error {
	switch f.DateRange {
	case DateRangeAll, DateRangeToday, DateRangeWeek, DateRangeMonth, DateRangeYear:
	default:
		return apperr.NewInvalidFilter("dateRange", string(f.DateRange))
	}

	switch f.ReadTime {
	case ReadTimeAll, ReadTimeShort, ReadTimeMedium, ReadTimeLong:
	default:
		return apperr.NewInvalidFilter("readTime", string(f.ReadTime))
	}

	switch f.SortBy {
	case SortLatest, SortPopular, SortTrending, SortMostViewed, SortMostLiked:
	default:
		return apperr.NewInvalidFilter("sortBy", string(f.SortBy))
	}

	return nil
}
