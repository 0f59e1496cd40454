package zonefile

import (
	"time"
)

// NextSerial returns the serial to follow previous. The preference is a date-coded
// YYYYMMDDnn serial for the day of now, but if that's not greater than previous, say due
// to multiple updates on the same day, then it's simply previous+1.
//
// The result is always greater than previous in rfc1982 serial arithmetic, which is how
// secondaries compare serials. It is also numerically greater for every previous except
// 4294967295, which wraps to zero.
func NextSerial(previous uint32, now time.Time) uint32 {
	today := uint64(now.Year())*1000000 + uint64(now.Month())*10000 + uint64(now.Day())*100
	if today > uint64(previous) && today <= 0xffffffff {
		return uint32(today)
	}

	return previous + 1
}
