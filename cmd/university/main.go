// Package main - точка входа демонстрации университета.
//
// Студент создаётся фабрикой, оборачивается декоратором TutoringSupport,
// регистрируется в общем для процесса университете и проверяется на допуск
// к курсу. Ход демонстрации пишется в stdout, структурные логи - в stderr.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alem-hub/university-patterns/config"
	"github.com/alem-hub/university-patterns/internal/domain/shared"
	"github.com/alem-hub/university-patterns/internal/domain/student"
	"github.com/alem-hub/university-patterns/internal/domain/university"
	"github.com/alem-hub/university-patterns/internal/infrastructure/messaging"
	"github.com/alem-hub/university-patterns/pkg/logger"
)

const demoCourse = "Advanced Quantum Mechanics"

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. КОНФИГУРАЦИЯ И ЛОГИРОВАНИЕ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.LoggerOptions()).With(logger.String("app", cfg.App.Name))
	log.Info("starting", logger.String("env", string(cfg.App.Environment)), logger.String("version", cfg.App.Version))

	// ─────────────────────────────────────────────────────────────────────────
	// 2. ШИНА СОБЫТИЙ
	// ─────────────────────────────────────────────────────────────────────────
	bus := messaging.NewInMemoryEventBus(messaging.InMemoryEventBusConfig{
		Logger:        log,
		EnableMetrics: true,
	})
	defer func() {
		logBusMetrics(log, bus.Metrics())
		if err := bus.Close(); err != nil {
			log.Warn("failed to close event bus", logger.Err(err))
		}
	}()

	if err := bus.Subscribe(shared.EventStudentEnrolled, func(e shared.Event) error {
		log.Info("student enrolled", logger.Any("payload", e.Payload()))
		return nil
	}); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ДЕМОНСТРАЦИЯ
	// ─────────────────────────────────────────────────────────────────────────
	uni := university.Instance(university.WithLogger(log), university.WithPublisher(bus))
	return demo(out, log, uni, student.BasicFactory{})
}

// demo пишет ход демонстрации в out, используя переданные университет и фабрику.
func demo(out io.Writer, log *logger.Logger, uni *university.University, factory student.Factory) error {
	fmt.Fprintln(out, "Factory Pattern: Created a BasicStudent using BasicFactory.")
	base := factory.CreateStudent([]string{"Math", "Physics"}, true)

	fmt.Fprintln(out, "Decorator Pattern: Enhancing BasicStudent with TutoringSupport.")
	tutored := student.NewTutoringSupport(base)

	fmt.Fprintln(out, "Singleton Pattern: Adding student to the University.")
	uni.AddStudent(tutored)

	fmt.Fprintf(out, "University now has %d students.\n", len(uni.Students()))

	start := time.Now()
	eligible := tutored.CanTakeCourse(demoCourse)
	log.Info("eligibility checked",
		logger.Operation("CanTakeCourse"),
		logger.Course(demoCourse),
		logger.Bool("eligible", eligible),
		logger.Latency(time.Since(start)),
	)

	_, err := fmt.Fprintf(out, "Checking enhanced capabilities due to Decorator: Can tutored student take '%s'? %t\n",
		demoCourse, eligible)
	return err
}

// logBusMetrics пишет итоговую статистику шины. m == nil, если метрики выключены.
func logBusMetrics(log *logger.Logger, m *messaging.EventBusMetrics) {
	if m == nil {
		return
	}
	snap := m.Snapshot()
	log.Info("event bus metrics",
		logger.Any("published_by_type", snap.PublishedByType),
		logger.Any("handled_by_type", snap.HandledByType),
		logger.Int("handler_failures", int(snap.HandlerFailures)),
	)
}
