package bela

import (
	stderrors "errors"
	"testing"

	"github.com/l0calh05t/bela-go/errors"
)

func TestCreateThenSchedule(t *testing.T) {
	eng := newFakeEngine(4, 2)
	setup := eng.setupCtx()
	render := eng.renderCtx()

	ran := 0
	task, err := setup.CreateAuxiliaryTask(func() { ran++ }, 10, "counting_stuff")
	if err != nil {
		t.Fatalf("CreateAuxiliaryTask error: %v", err)
	}

	if err := render.ScheduleAuxiliaryTask(task); err != nil {
		t.Fatalf("ScheduleAuxiliaryTask error: %v", err)
	}
	if len(eng.scheduled) != 1 {
		t.Fatalf("expected 1 scheduled task, got %d", len(eng.scheduled))
	}

	// The engine invokes the registered trampoline, which runs the callable.
	eng.tasks[0]()
	if ran != 1 {
		t.Errorf("task ran %d times, want 1", ran)
	}
}

func TestCreateAuxiliaryTask_NullHandle(t *testing.T) {
	eng := newFakeEngine(4, 2)
	eng.failCreate = true
	setup := eng.setupCtx()

	_, err := setup.CreateAuxiliaryTask(func() {}, 10, "doomed")
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindTaskCreateFailed}) {
		t.Fatalf("expected task_create_failed, got %v", err)
	}
}

func TestScheduleAuxiliaryTask_NonzeroStatus(t *testing.T) {
	eng := newFakeEngine(4, 2)
	setup := eng.setupCtx()
	render := eng.renderCtx()

	task, err := setup.CreateAuxiliaryTask(func() {}, 10, "fine_at_first")
	if err != nil {
		t.Fatalf("CreateAuxiliaryTask error: %v", err)
	}

	eng.scheduleStatus = 1
	err = render.ScheduleAuxiliaryTask(task)
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindTaskScheduleFailed}) {
		t.Fatalf("expected task_schedule_failed, got %v", err)
	}
}

func TestScheduleAuxiliaryTask_ZeroHandle(t *testing.T) {
	eng := newFakeEngine(4, 2)
	render := eng.renderCtx()

	err := render.ScheduleAuxiliaryTask(AuxiliaryTask{})
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindTaskScheduleFailed}) {
		t.Fatalf("expected task_schedule_failed, got %v", err)
	}
}

func TestTaskTrampoline_ContainsPanic(t *testing.T) {
	eng := newFakeEngine(4, 2)
	setup := eng.setupCtx()

	_, err := setup.CreateAuxiliaryTask(func() { panic("task exploded") }, 10, "explosive")
	if err != nil {
		t.Fatalf("CreateAuxiliaryTask error: %v", err)
	}

	// Invoking the registered trampoline must not propagate the panic.
	eng.tasks[0]()
}
