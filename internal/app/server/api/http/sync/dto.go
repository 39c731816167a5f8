package sync

import (
	"time"

	"finbox/internal/domain/backup"
)

// Единый конверт ответов: {success, message, error} плюс полезная нагрузка.

type backupInput struct {
	Body BackupRequest
}

type backupOutput struct {
	Body BackupResponse
}

type BackupRequest struct {
	Data      backup.BoxData `json:"data"`
	Version   string         `json:"version,omitempty" default:"1.0.0"`
	Timestamp time.Time      `json:"timestamp,omitempty" format:"date-time"`
}

type BackupResponse struct {
	Success        bool          `json:"success"`
	Message        string        `json:"message,omitempty"`
	Error          string        `json:"error,omitempty"`
	Stats          *backup.Stats `json:"stats,omitempty"`
	BackupID       string        `json:"backupId,omitempty"`
	LastBackupTime *time.Time    `json:"lastBackupTime,omitempty"`
}

type restoreInput struct{}

type restoreOutput struct {
	Body RestoreResponse
}

type RestoreResponse struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message,omitempty"`
	Error          string         `json:"error,omitempty"`
	Data           backup.BoxData `json:"data,omitempty"`
	Stats          *backup.Stats  `json:"stats,omitempty"`
	LastBackupTime *time.Time     `json:"lastBackupTime,omitempty"`
	Version        string         `json:"version,omitempty"`
}

type smartSyncInput struct {
	Body SmartSyncRequest
}

type smartSyncOutput struct {
	Body SmartSyncResponse
}

type SmartSyncRequest struct {
	LocalData backup.BoxData `json:"localData"`
	// Принимается для совместимости; не участвует в разрешении конфликтов.
	LastSyncTime *time.Time `json:"lastSyncTime,omitempty" format:"date-time"`
	PreferCloud  bool       `json:"preferCloud,omitempty"`
	// Strict дополнительно возвращает список конфликтов по совпавшим ключам.
	Strict bool `json:"strict,omitempty"`
}

type SmartSyncResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Error      string            `json:"error,omitempty"`
	MergedData backup.BoxData    `json:"mergedData,omitempty"`
	Stats      *backup.Stats     `json:"stats,omitempty"`
	Conflicts  []backup.Conflict `json:"conflicts,omitempty"`
}

type selectiveSyncInput struct {
	Body SelectiveSyncRequest
}

type selectiveSyncOutput struct {
	Body SelectiveSyncResponse
}

type SelectiveSyncRequest struct {
	Data     backup.BoxData `json:"data"`
	BoxNames []string       `json:"boxNames"`
}

type SelectiveSyncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type statusInput struct{}

type statusOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Success        bool          `json:"success"`
	Message        string        `json:"message,omitempty"`
	Error          string        `json:"error,omitempty"`
	HasBackup      bool          `json:"hasBackup"`
	LastBackupTime *time.Time    `json:"lastBackupTime"`
	Version        string        `json:"version,omitempty"`
	Stats          *backup.Stats `json:"stats,omitempty"`
}

type deleteInput struct{}

type deleteOutput struct {
	Body DeleteResponse
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
