package timeutil

import "time"

// Bangkok is the fixed UTC+7 offset applied to timestamps before they leave
// the API. Hardcoded on purpose; it is a display convention, not a locale.
var Bangkok = time.FixedZone("UTC+7", 7*60*60)

// ToBangkok converts a stored timestamp to the UTC+7 display offset. Stored
// values are written as UTC (the registry pins NowFunc to UTC), so the
// conversion is a plain zone shift. The zero time passes through untouched.
func ToBangkok(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Bangkok)
}

// ToBangkokPtr is ToBangkok for nullable timestamps; nil passes through.
func ToBangkokPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	converted := ToBangkok(*t)
	return &converted
}
