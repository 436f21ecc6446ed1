package walker

// Selection names the block ordinal to materialize, if any.
type Selection struct {
	index uint64
	set   bool
}

// NoSelection scans the whole file without materializing anything.
var NoSelection = Selection{}

// Index selects the block at the given 0-based position in file order.
func Index(i uint64) Selection {
	return Selection{index: i, set: true}
}

// Get returns the selected ordinal and whether one was set.
func (s Selection) Get() (uint64, bool) {
	return s.index, s.set
}

func (s Selection) matches(ordinal uint64) bool {
	return s.set && s.index == ordinal
}
