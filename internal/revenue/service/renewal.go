package service

import (
	"time"

	revenuedomain "github.com/subtally/subtally/internal/revenue/domain"
)

// Classify buckets a next billing date against a sliding window of
// windowDays from now. Both instants are normalized to midnight first, so
// the distance is a whole number of calendar days and time-of-day never
// shifts a subscription across a bucket boundary. windowDays is clamped
// to 1. A nil date is unscheduled and carries no day distance.
func Classify(nextBillingDate *time.Time, now time.Time, windowDays int) revenuedomain.Classification {
	if nextBillingDate == nil {
		return revenuedomain.Classification{Bucket: revenuedomain.BucketUnscheduled}
	}
	if windowDays < 1 {
		windowDays = 1
	}

	days := dayDistance(now, *nextBillingDate)

	var bucket revenuedomain.RenewalBucket
	switch {
	case days < 0:
		bucket = revenuedomain.BucketOverdue
	case days <= windowDays:
		bucket = revenuedomain.BucketDueSoon
	default:
		bucket = revenuedomain.BucketNotDue
	}

	return revenuedomain.Classification{Bucket: bucket, DayDistance: &days}
}

func dayDistance(now, next time.Time) int {
	diff := truncateToDay(next).Sub(truncateToDay(now))
	return int(diff.Hours() / 24)
}

func truncateToDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

func truncateToMonth(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, time.UTC)
}
