package student

import (
	"slices"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONTRACT
// ══════════════════════════════════════════════════════════════════════════════

// Student - контракт, который реализует каждый вариант студента.
type Student interface {
	// Clone возвращает новый независимый экземпляр с эквивалентным состоянием.
	Clone() Student

	// CanTakeCourse сообщает, может ли студент записаться на курс.
	// Не имеет побочных эффектов.
	CanTakeCourse(course string) bool

	// HasTestToSkipLevels возвращает флаг теста на пропуск уровней.
	HasTestToSkipLevels() bool

	// Categories возвращает категории студента в порядке добавления.
	// Изменение возвращённого слайса не влияет на студента.
	Categories() []string
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: BASIC STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// BasicStudent - конкретный студент: список категорий и флаг.
// Неизменяем после создания.
type BasicStudent struct {
	categories       []string
	testToSkipLevels bool
}

// Compile-time check.
var _ Student = (*BasicStudent)(nil)

// NewBasicStudent создаёт студента. Слайс категорий копируется.
func NewBasicStudent(categories []string, testToSkipLevels bool) *BasicStudent {
	return &BasicStudent{
		categories:       cloneCategories(categories),
		testToSkipLevels: testToSkipLevels,
	}
}

// Clone возвращает копию студента с собственным слайсом категорий.
func (s *BasicStudent) Clone() Student {
	return NewBasicStudent(s.categories, s.testToSkipLevels)
}

// CanTakeCourse всегда возвращает true.
// Правила допуска к курсам пока не определены.
func (s *BasicStudent) CanTakeCourse(course string) bool {
	return true
}

// HasTestToSkipLevels возвращает сохранённый флаг.
func (s *BasicStudent) HasTestToSkipLevels() bool {
	return s.testToSkipLevels
}

// Categories возвращает копию категорий.
func (s *BasicStudent) Categories() []string {
	return cloneCategories(s.categories)
}

// cloneCategories копирует слайс, заменяя nil пустым слайсом.
func cloneCategories(categories []string) []string {
	if categories == nil {
		return []string{}
	}
	return slices.Clone(categories)
}
