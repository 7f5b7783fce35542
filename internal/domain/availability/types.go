package availability

// Slot is a free window in campus wall-clock time, formatted HH:MM.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Snapshot maps a classroom ID to its free windows in chronological order.
// It is written and read as a single document, so readers see all of it or none of it.
type Snapshot map[string][]Slot

// SlotsFor never returns nil so that empty availability serializes as [].
func (s Snapshot) SlotsFor(classroomID string) []Slot {
	slots, ok := s[classroomID]
	if !ok || slots == nil {
		return []Slot{}
	}
	return slots
}
