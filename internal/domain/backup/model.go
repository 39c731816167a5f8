package backup

import (
	"encoding/json"
	"time"
)

// BoxData — полный набор клиентских "боксов": имя бокса -> ключ элемента ->
// произвольное значение. Набор имён боксов открытый, схема содержимого
// принадлежит клиенту и сервером не проверяется.
type BoxData map[string]map[string]any

// Stats is a derived summary of a snapshot, recomputed on every write and
// never mutated independently.
type Stats struct {
	TotalBoxes int            `json:"totalBoxes"`
	TotalItems int            `json:"totalItems"`
	BoxDetails map[string]int `json:"boxDetails"`
}

// Snapshot is the single cloud backup record of a user. Exactly one exists
// per user at any time, upsert semantics.
type Snapshot struct {
	UserID         int       `json:"user_id"`
	BackupID       string    `json:"backup_id"`
	Data           BoxData   `json:"data"`
	Version        string    `json:"version"`
	LastBackupTime time.Time `json:"last_backup_time"`
	DataSize       int64     `json:"data_size"`
	Stats          Stats     `json:"stats"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ComputeStats считает агрегаты по снапшоту. Пустой или отсутствующий бокс
// даёт ноль элементов.
func ComputeStats(data BoxData) Stats {
	stats := Stats{
		BoxDetails: make(map[string]int, len(data)),
	}

	for boxName, boxData := range data {
		itemCount := len(boxData)
		stats.TotalBoxes++
		stats.TotalItems += itemCount
		stats.BoxDetails[boxName] = itemCount
	}

	return stats
}

// Refresh recomputes the derived fields (DataSize, Stats, UpdatedAt) from the
// current Data value. Must be called before every persist so the stored
// record stays consistent.
func (s *Snapshot) Refresh(now time.Time) {
	if s.Data == nil {
		s.Data = BoxData{}
	}
	raw, err := json.Marshal(s.Data)
	if err == nil {
		s.DataSize = int64(len(raw))
	}
	s.Stats = ComputeStats(s.Data)
	s.UpdatedAt = now
}

// FormattedSize возвращает размер данных в человекочитаемом виде.
func (s *Snapshot) FormattedSize() string {
	return formatBytes(s.DataSize)
}
