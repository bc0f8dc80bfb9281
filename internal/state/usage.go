package state

// UsageStore holds the usage-count snapshot the panel renders from.
type UsageStore interface {
	Ranks() map[string]int
	SetRanks(map[string]int)
	Count(glyph string) int
}

type usageStore struct {
	ranks map[string]int
}

func NewUsageStore() UsageStore {
	return &usageStore{ranks: map[string]int{}}
}

func (u *usageStore) Ranks() map[string]int {
	return cloneRanks(u.ranks)
}

func (u *usageStore) SetRanks(ranks map[string]int) {
	u.ranks = cloneRanks(ranks)
}

func (u *usageStore) Count(glyph string) int {
	return u.ranks[glyph]
}

func cloneRanks(ranks map[string]int) map[string]int {
	if len(ranks) == 0 {
		return map[string]int{}
	}
	dup := make(map[string]int, len(ranks))
	for glyph, count := range ranks {
		dup[glyph] = count
	}
	return dup
}
