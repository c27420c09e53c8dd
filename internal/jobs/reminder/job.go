// Package reminder рассылает напоминания о предстоящих приёмах.
//
// Каждый запуск публикует appointment.reminder для записей, начинающихся в
// [from, now+offset+window). Первый запуск берёт from = now+offset, следующие
// продолжают с конца предыдущего окна, поэтому запоздавший запуск досылает
// пропущенное, а повторный в том же окне ничего не шлёт.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Options смещение напоминания и ширина окна одного запуска
type Options struct {
	Location *time.Location
	Offset   time.Duration
	Window   time.Duration
}

// Job задача рассылки напоминаний
type Job struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	opts            Options
	timeProvider    TimeProvider
	logger          Logger

	mu   sync.Mutex
	next time.Time // начало следующего окна, zero до первого успешного запуска
}

// NewJob создает задачу напоминаний
func NewJob(appointmentRepo AppointmentRepository, notifier Notifier, opts Options, logger Logger) *Job {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	return &Job{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		opts:            opts,
		timeProvider:    realTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (j *Job) WithTimeProvider(tp TimeProvider) *Job {
	j.timeProvider = tp
	return j
}

// Register добавляет задачу в планировщик
func (j *Job) Register(c *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := c.AddFunc(spec, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error("Reminder: run failed: %v", err)
		}
	})
	if err != nil {
		return 0, fmt.Errorf("reminder: invalid schedule %q: %w", spec, err)
	}
	return id, nil
}

// Run выполняет один проход и возвращает число отправленных напоминаний
func (j *Job) Run(ctx context.Context) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.timeProvider.Now().In(j.opts.Location).Truncate(j.opts.Window)
	to := now.Add(j.opts.Offset + j.opts.Window)
	from := to.Add(-j.opts.Window)
	if !j.next.IsZero() {
		from = j.next
	}
	if !from.Before(to) {
		return 0, nil
	}

	list, err := j.appointmentRepo.ListBookedBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("reminder: list appointments: %w", err)
	}
	j.next = to

	sent := 0
	for _, a := range list {
		startsAt := a.StartsAt(j.opts.Location)
		if startsAt.Before(from) || !startsAt.Before(to) {
			continue
		}

		if err := j.notifier.AppointmentReminder(ctx, a); err != nil {
			j.logger.Error("Reminder: failed to publish reminder for appointment id=%s: %v", a.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		j.logger.Info("Reminder: sent %d reminders for [%s, %s)", sent,
			from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return sent, nil
}
