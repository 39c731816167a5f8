package backup

import "time"

// Результаты операций сервиса синхронизации. HTTP-слой оборачивает их в
// единый конверт {success, message, ...}.

// BackupResult возвращается после полного бэкапа.
type BackupResult struct {
	Stats          Stats     `json:"stats"`
	BackupID       string    `json:"backupId"`
	LastBackupTime time.Time `json:"lastBackupTime"`
}

// RestoreResult возвращает сохранённый снапшот как есть.
type RestoreResult struct {
	Data           BoxData   `json:"data"`
	Stats          Stats     `json:"stats"`
	LastBackupTime time.Time `json:"lastBackupTime"`
	Version        string    `json:"version"`
}

// SyncResult возвращается после smart sync.
type SyncResult struct {
	MergedData BoxData    `json:"mergedData"`
	Stats      Stats      `json:"stats"`
	Conflicts  []Conflict `json:"conflicts,omitempty"`
}

// StatusResult — метаданные синхронизации без изменения состояния.
type StatusResult struct {
	HasBackup      bool       `json:"hasBackup"`
	LastBackupTime *time.Time `json:"lastBackupTime"`
	Version        string     `json:"version,omitempty"`
	Stats          *Stats     `json:"stats,omitempty"`
}
