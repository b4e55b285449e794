package entity

import "errors"

// NotificationSortType selects the ordering of a notification feed page.
type NotificationSortType string

const (
	// SortRecent orders by creation time, newest first. This is the default.
	SortRecent NotificationSortType = "RECENT"
	// SortUnreadFirst orders unread notifications before read ones,
	// newest first within each group.
	SortUnreadFirst NotificationSortType = "UNREAD_FIRST"
)

// ErrInvalidSortType is returned when a sort value is not recognized.
var ErrInvalidSortType = errors.New("invalid notification sort type")

// ParseNotificationSortType converts a raw string into a NotificationSortType.
// An empty string falls back to SortRecent.
func ParseNotificationSortType(raw string) (NotificationSortType, error) {
	switch NotificationSortType(raw) {
	case SortRecent, "":
		return SortRecent, nil
	case SortUnreadFirst:
		return SortUnreadFirst, nil
	default:
		return "", ErrInvalidSortType
	}
}
