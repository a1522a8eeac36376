package vocab

// Reconcile merges incoming items into existing. A seen-set is seeded from
// the normalized keys of existing items with a non-empty front (empty fronts
// are not protected against duplication, mirroring the tolerant parser).
// Incoming items are appended in order when their key is non-empty and
// unseen; everything else is silently skipped. Existing entries are never
// reordered or evicted: appending stops once the merged list reaches limit,
// so any excess is taken only from the incoming tail.
func Reconcile(existing, incoming []Item, limit int) []Item {
	seen := make(map[string]bool, len(existing))
	for _, it := range existing {
		if it.Front != "" {
			seen[NormalizeKey(it.Front)] = true
		}
	}

	merged := make([]Item, len(existing), len(existing)+len(incoming))
	copy(merged, existing)

	for _, it := range incoming {
		if len(merged) >= limit {
			break
		}
		key := NormalizeKey(it.Front)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, it)
	}
	return merged
}

// MissingCount reports how many more items are needed to reach desired.
// It never goes negative.
func MissingCount(current, desired int) int {
	if current >= desired {
		return 0
	}
	return desired - current
}
