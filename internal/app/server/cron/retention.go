// Package cron запускает фоновые задачи обслуживания хранилища.
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/exp/slog"

	"finbox/internal/domain/backup"
	"finbox/internal/domain/session"
)

// Scheduler раз в сутки удаляет старые бэкапы и протухшие сессии.
type Scheduler struct {
	cron     *cron.Cron
	backups  backup.Servicer
	sessions session.Repository
	days     int
	log      *slog.Logger
}

func New(backups backup.Servicer, sessions session.Repository, retentionDays int, log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		backups:  backups,
		sessions: sessions,
		days:     retentionDays,
		log:      log.With(slog.String("component", "cron")),
	}
}

// Start регистрирует задачи и запускает планировщик.
// Очистка бэкапов отключается нулевым retention.
func (s *Scheduler) Start() error {
	if s.days > 0 {
		if _, err := s.cron.AddFunc("@daily", s.purgeBackups); err != nil {
			return err
		}
	}
	if _, err := s.cron.AddFunc("@hourly", s.purgeSessions); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("scheduler started", slog.Int("retention_days", s.days))
	return nil
}

// Stop останавливает планировщик и ждёт завершения запущенных задач.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) purgeBackups() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := s.backups.Purge(ctx, s.days)
	if err != nil {
		s.log.Error("purge backups", slog.String("error", err.Error()))
		return
	}
	if count > 0 {
		s.log.Info("old backups removed", slog.Int64("count", count))
	}
}

func (s *Scheduler) purgeSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.Error("purge sessions", slog.String("error", err.Error()))
		return
	}
	if count > 0 {
		s.log.Info("expired sessions removed", slog.Int64("count", count))
	}
}
