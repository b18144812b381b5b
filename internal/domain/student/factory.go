package student

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY
// ══════════════════════════════════════════════════════════════════════════════

// Factory создаёт студентов из сырых полей.
type Factory interface {
	CreateStudent(categories []string, testToSkipLevels bool) Student
}

// BasicFactory создаёт BasicStudent. Нулевое значение готово к использованию.
type BasicFactory struct{}

// Compile-time check.
var _ Factory = BasicFactory{}

// CreateStudent создаёт нового BasicStudent без какой-либо проверки полей.
func (BasicFactory) CreateStudent(categories []string, testToSkipLevels bool) Student {
	return NewBasicStudent(categories, testToSkipLevels)
}

// ══════════════════════════════════════════════════════════════════════════════
// BUILDER
// ══════════════════════════════════════════════════════════════════════════════

// Builder накапливает параметры и собирает BasicStudent.
// По умолчанию: пустой список категорий и false.
type Builder struct {
	categories       []string
	testToSkipLevels bool
}

// NewBuilder создаёт билдер с параметрами по умолчанию.
func NewBuilder() *Builder {
	return &Builder{categories: []string{}}
}

// SetCategories задаёт категории. Слайс копируется при Build.
func (b *Builder) SetCategories(categories []string) *Builder {
	b.categories = categories
	return b
}

// SetTestToSkipLevels задаёт флаг теста на пропуск уровней.
func (b *Builder) SetTestToSkipLevels(testToSkipLevels bool) *Builder {
	b.testToSkipLevels = testToSkipLevels
	return b
}

// Build собирает студента из текущего состояния.
// Состояние билдера не сбрасывается: повторный Build вернёт такого же студента.
func (b *Builder) Build() *BasicStudent {
	return NewBasicStudent(b.categories, b.testToSkipLevels)
}

// Reset возвращает билдер к параметрам по умолчанию.
func (b *Builder) Reset() *Builder {
	b.categories = []string{}
	b.testToSkipLevels = false
	return b
}
