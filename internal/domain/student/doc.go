// Package student содержит доменную модель студента университета.
//
// Пакет определяет контракт Student и набор классических шаблонов вокруг него:
//
//   - Prototype: каждый вариант умеет Clone() себя в независимую копию
//   - Decorator: Decorator и TutoringSupport оборачивают любого Student
//   - Factory: Factory / BasicFactory создают BasicStudent из сырых полей
//   - Builder: Builder накапливает параметры и собирает BasicStudent
//
// # Архитектурные принципы
//
//  1. Нулевые внешние зависимости - только стандартная библиотека Go
//  2. Потребители зависят от интерфейса Student, а не от конкретных типов
//  3. Состояние BasicStudent неизменяемо после создания
//
// # Пример использования
//
//	factory := BasicFactory{}
//	base := factory.CreateStudent([]string{"Math", "Physics"}, true)
//
//	tutored := NewTutoringSupport(base)
//	tutored.CanTakeCourse("Advanced Quantum Mechanics") // true
//
//	// Клонирование сохраняет декоратор
//	twin := tutored.Clone() // *TutoringSupport
//
//	// Снять все слои декораторов
//	inner := Undecorate(twin) // *BasicStudent
//
// Builder не сбрасывает состояние после Build(), повторный вызов вернёт
// студента с теми же полями:
//
//	b := NewBuilder().SetCategories([]string{"Bio"})
//	first, second := b.Build(), b.Build()
package student
