package backup

import "errors"

var (
	// ErrNoBackup — у пользователя ещё нет ни одной резервной копии.
	ErrNoBackup = errors.New("no backup found")
	// ErrNoBoxNames — selective sync вызван без списка боксов.
	ErrNoBoxNames = errors.New("box names list is empty")
)
