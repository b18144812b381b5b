// Package university содержит реестр университета: упорядоченный список студентов,
// в который можно только добавлять.
package university

import (
	"sync"

	"github.com/google/uuid"

	"github.com/alem-hub/university-patterns/internal/domain/shared"
	"github.com/alem-hub/university-patterns/internal/domain/student"
	"github.com/alem-hub/university-patterns/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: UNIVERSITY
// ══════════════════════════════════════════════════════════════════════════════

// University - реестр студентов в памяти.
// Реестр без блокировок: использовать из одной горутины.
type University struct {
	// id - уникальный идентификатор университета (UUID).
	id string

	// students - студенты в порядке добавления, дубликаты допустимы.
	students []student.Student

	logger    *logger.Logger
	publisher shared.EventPublisher
}

// Option настраивает University.
type Option func(*University)

// WithLogger задаёт логгер для изменений реестра.
func WithLogger(l *logger.Logger) Option {
	return func(u *University) {
		if l != nil {
			u.logger = l
		}
	}
}

// WithPublisher задаёт получателя событий StudentEnrolledEvent.
func WithPublisher(p shared.EventPublisher) Option {
	return func(u *University) {
		u.publisher = p
	}
}

// New создаёт пустой университет.
func New(opts ...Option) *University {
	u := &University{
		id:       uuid.NewString(),
		students: make([]student.Student, 0),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.logger = u.logger.With(logger.Component("university"), logger.UniversityID(u.id))
	return u
}

var (
	instance     *University
	instanceOnce sync.Once
)

// Instance возвращает общий для процесса университет, создавая его при первом вызове.
// Опции применяет только тот вызов, который его создаёт.
func Instance(opts ...Option) *University {
	instanceOnce.Do(func() {
		instance = New(opts...)
	})
	return instance
}

// ID возвращает идентификатор университета.
func (u *University) ID() string {
	return u.id
}

// AddStudent добавляет s в конец реестра. Дубликаты сохраняются.
// nil (в том числе типизированный) тоже добавляется, но событие для него не публикуется.
func (u *University) AddStudent(s student.Student) {
	u.students = append(u.students, s)
	position := len(u.students) - 1

	log := u.logger.With(logger.Operation("AddStudent"), logger.RosterSize(len(u.students)))

	if student.IsNil(s) {
		log.Warn("nil student added")
		return
	}

	if log.Enabled(logger.LevelDebug) {
		log.Debug("student added", logger.Categories(s.Categories()))
	}

	if u.publisher == nil {
		return
	}

	enrollmentID := uuid.NewString()
	event := shared.NewStudentEnrolledEvent(u.id, enrollmentID, position, s.Categories(), s.HasTestToSkipLevels())
	event.BaseEvent = event.WithCorrelationID(enrollmentID)

	if err := u.publisher.Publish(event); err != nil {
		log.Warn("failed to publish enrollment",
			logger.EnrollmentID(enrollmentID),
			logger.Err(err),
		)
	}
}

// Students возвращает снимок реестра в порядке добавления.
func (u *University) Students() []student.Student {
	out := make([]student.Student, len(u.students))
	copy(out, u.students)
	return out
}

// Count возвращает количество записей в реестре.
func (u *University) Count() int {
	return len(u.students)
}
