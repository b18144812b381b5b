package student

import (
	"reflect"

	"github.com/alem-hub/university-patterns/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DECORATOR
// ══════════════════════════════════════════════════════════════════════════════

// Decorator оборачивает другого Student и по умолчанию пересылает ему все вызовы.
// Обёрнутый студент разделяется, а не копируется.
type Decorator struct {
	base Student
}

// Compile-time check.
var _ Student = (*Decorator)(nil)

// NewDecorator оборачивает base. Паникует, если base - nil,
// в том числе типизированный nil-указатель.
func NewDecorator(base Student) *Decorator {
	if IsNil(base) {
		panic(shared.ErrNilStudent)
	}
	return &Decorator{base: base}
}

// Base возвращает обёрнутого студента.
func (d *Decorator) Base() Student {
	return d.base
}

// Clone клонирует обёрнутого студента и оборачивает копию заново,
// так что слой декоратора сохраняется.
func (d *Decorator) Clone() Student {
	return NewDecorator(d.base.Clone())
}

// CanTakeCourse пересылается обёрнутому студенту.
func (d *Decorator) CanTakeCourse(course string) bool {
	return d.base.CanTakeCourse(course)
}

// HasTestToSkipLevels пересылается обёрнутому студенту.
func (d *Decorator) HasTestToSkipLevels() bool {
	return d.base.HasTestToSkipLevels()
}

// Categories пересылается обёрнутому студенту.
func (d *Decorator) Categories() []string {
	return d.base.Categories()
}

// ══════════════════════════════════════════════════════════════════════════════
// TUTORING SUPPORT
// ══════════════════════════════════════════════════════════════════════════════

// TutoringSupport - декоратор для студентов с поддержкой тьютора.
// Переопределяет только CanTakeCourse.
type TutoringSupport struct {
	*Decorator
}

// Compile-time check.
var _ Student = (*TutoringSupport)(nil)

// NewTutoringSupport оборачивает base. Паникует, если base - nil.
func NewTutoringSupport(base Student) *TutoringSupport {
	return &TutoringSupport{Decorator: NewDecorator(base)}
}

// CanTakeCourse всегда возвращает true: тьютор снимает любые ограничения.
func (t *TutoringSupport) CanTakeCourse(course string) bool {
	return true
}

// Clone возвращает новый TutoringSupport поверх клона обёрнутого студента.
func (t *TutoringSupport) Clone() Student {
	return NewTutoringSupport(t.base.Clone())
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// IsNil сообщает, что s - nil-интерфейс или интерфейс с nil-указателем внутри.
func IsNil(s Student) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// wrapper реализуется любым декоратором.
type wrapper interface {
	Base() Student
}

// Undecorate снимает все слои декораторов и возвращает самого внутреннего студента.
// Undecorate(s).Clone() даёт копию без декораторов.
func Undecorate(s Student) Student {
	for {
		w, ok := s.(wrapper)
		if !ok {
			return s
		}
		s = w.Base()
	}
}

// Layers возвращает количество слоёв декораторов вокруг внутреннего студента.
func Layers(s Student) int {
	n := 0
	for {
		w, ok := s.(wrapper)
		if !ok {
			return n
		}
		s = w.Base()
		n++
	}
}
