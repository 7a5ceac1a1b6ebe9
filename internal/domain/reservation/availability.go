package reservation

import "time"

// DayWindow is the resolved open/close pair returned alongside slots.
type DayWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// SlotTimes generates candidate appointment start times between open and
// close. The cursor starts at open, emits "HH:MM", then advances by
// duration+buffer minutes until it reaches or passes close. A slot only
// needs its start before close; whether the appointment itself fits before
// closing is intentionally not checked.
func SlotTimes(open, close string, durationMin, bufferMin int) []string {
	start, err := time.Parse("15:04", open)
	if err != nil {
		return nil
	}
	end, err := time.Parse("15:04", close)
	if err != nil {
		return nil
	}

	step := time.Duration(durationMin+bufferMin) * time.Minute
	if step <= 0 {
		return nil
	}

	var slots []string
	for cur := start; cur.Before(end); cur = cur.Add(step) {
		slots = append(slots, cur.Format("15:04"))
	}
	return slots
}
