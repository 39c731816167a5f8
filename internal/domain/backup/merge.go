package backup

import "sort"

// MergeOptions управляет стратегией слияния при smart sync.
type MergeOptions struct {
	// PreferCloud: при совпадении ключа элемента побеждает облачная сторона.
	// По умолчанию побеждает локальная.
	PreferCloud bool
	// Strict включает отчёт о конфликтах: каждый ключ, присутствующий с обеих
	// сторон, попадает в список Conflict. Слияние при этом не блокируется.
	Strict bool
}

// Conflict describes an item key present on both sides of a merge. The losing
// value is silently replaced, Strict mode only makes that visible.
type Conflict struct {
	Box string `json:"box"`
	Key string `json:"key"`
}

// Merge reconciles a client-local snapshot with the stored cloud snapshot.
// The merge is a shallow, per-item last-writer-wins: the whole preferred side
// is treated as more authoritative for every colliding key, no per-item
// timestamps are inspected. Boxes present on one side only pass through
// unchanged.
func Merge(local, cloud BoxData, opts MergeOptions) (BoxData, []Conflict) {
	merged := make(BoxData, len(local)+len(cloud))

	for _, boxName := range unionBoxNames(local, cloud) {
		localBox := local[boxName]
		cloudBox := cloud[boxName]

		box := make(map[string]any, len(localBox)+len(cloudBox))
		if opts.PreferCloud {
			for k, v := range localBox {
				box[k] = v
			}
			for k, v := range cloudBox {
				box[k] = v
			}
		} else {
			for k, v := range cloudBox {
				box[k] = v
			}
			for k, v := range localBox {
				box[k] = v
			}
		}
		merged[boxName] = box
	}

	var conflicts []Conflict
	if opts.Strict {
		conflicts = collectConflicts(local, cloud)
	}

	return merged, conflicts
}

func unionBoxNames(local, cloud BoxData) []string {
	seen := make(map[string]struct{}, len(local)+len(cloud))
	names := make([]string, 0, len(local)+len(cloud))
	for name := range local {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for name := range cloud {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func collectConflicts(local, cloud BoxData) []Conflict {
	var conflicts []Conflict
	for _, boxName := range unionBoxNames(local, cloud) {
		cloudBox := cloud[boxName]
		if len(cloudBox) == 0 {
			continue
		}
		keys := make([]string, 0, len(local[boxName]))
		for key := range local[boxName] {
			if _, ok := cloudBox[key]; ok {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			conflicts = append(conflicts, Conflict{Box: boxName, Key: key})
		}
	}
	return conflicts
}
