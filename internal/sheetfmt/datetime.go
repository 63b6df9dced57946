package sheetfmt

import (
	"fmt"
	"time"
)

// kst is the fixed UTC+9 zone the factory sheets are written in.
var kst = time.FixedZone("KST", 9*60*60)

// FormatKoreanDateTime renders t as "YYYY. M. D 오전|오후 H:MM:SS" in KST.
// Month, day and hour are unpadded; minutes and seconds are zero-padded;
// hours use the 12-hour clock with 0 → 12. Downstream sheet consumers parse
// this exact shape, so it must not change.
func FormatKoreanDateTime(t time.Time) string {
	k := t.In(kst)

	period := "오전"
	if k.Hour() >= 12 {
		period = "오후"
	}

	hour := k.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d. %d. %d %s %d:%02d:%02d",
		k.Year(), int(k.Month()), k.Day(), period, hour, k.Minute(), k.Second())
}

// FormatKoreanDateTime24 renders t as "YYYY. MM. DD. HH:MM:SS" in KST:
// zero-padded month/day/hour on the 24-hour clock, with a trailing dot after
// the day. The defect log's timestamp column uses this shape; like the
// 12-hour one above it must not change.
func FormatKoreanDateTime24(t time.Time) string {
	k := t.In(kst)
	return fmt.Sprintf("%d. %02d. %02d. %02d:%02d:%02d",
		k.Year(), int(k.Month()), k.Day(), k.Hour(), k.Minute(), k.Second())
}
