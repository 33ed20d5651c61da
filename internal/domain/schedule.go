package domain

import (
	"fmt"
	"sync/atomic"
	"time"
)

// ScheduleEntry is a daily recurring trigger: every day at Time the scheduler
// applies Action to the referenced device. Entries never expire on their own;
// they live until explicitly cancelled. One-shot schedules would be a new
// entry kind, not a change to this one.
type ScheduleEntry struct {
	ID       string `json:"id"`
	DeviceID string `json:"device"`
	Action   Action `json:"action"`
	Time     string `json:"time"` // canonical 24-hour "HH:MM", zero-padded
}

var scheduleSeq atomic.Uint64

// NewScheduleID derives an entry id from the device id and creation time.
// A process-wide sequence keeps ids unique when two entries for the same
// device are created within the same millisecond.
func NewScheduleID(deviceID string, createdAt time.Time) string {
	return fmt.Sprintf("%s-%d-%d", deviceID, createdAt.UnixMilli(), scheduleSeq.Add(1))
}
