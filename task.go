package bela

import (
	"github.com/l0calh05t/bela-go/engine"
	"github.com/l0calh05t/bela-go/errors"
)

// AuxiliaryTask is an opaque handle to a callable registered with the
// engine. Handles are created during setup and may be scheduled from the
// render thread arbitrarily often; they remain valid for the remainder of
// the process.
type AuxiliaryTask struct {
	handle engine.AuxiliaryTask
}

// Preallocated so the failure return on the render path does not allocate.
var errTaskSchedule = &errors.Error{
	Kind: errors.KindTaskScheduleFailed,
	Op:   "Bela_scheduleAuxiliaryTask",
}

// CreateAuxiliaryTask registers fn to run on a lower-priority thread
// whenever the returned handle is scheduled. Priority ranges from
// engine.MaxAuxiliaryPriority (highest) to engine.MinAuxiliaryPriority.
// The name must be globally unique across cooperating processes; the
// engine cannot verify this precondition.
//
// Ownership of fn transfers to the engine for the remainder of the
// process: the native API offers no unregister path, so the callable is
// intentionally never reclaimed. A panic inside fn is contained by the
// registered trampoline and discarded; it never propagates into the
// engine's task thread.
func (c *SetupContext) CreateAuxiliaryTask(fn func(), priority int, name string) (AuxiliaryTask, error) {
	handle := c.eng.CreateAuxiliaryTask(taskTrampoline(fn), priority, name)
	if !handle.Valid() {
		return AuxiliaryTask{}, errors.TaskCreateFailed(name)
	}
	return AuxiliaryTask{handle: handle}, nil
}

// taskTrampoline wraps a task callable in a containment boundary. The task
// thread is out-of-band, so unlike the render path containment is both
// possible and required here: an escaping panic would tear down a thread
// the engine owns.
func taskTrampoline(fn func()) func() {
	return func() {
		defer func() {
			_ = recover()
		}()
		fn()
	}
}

// ScheduleAuxiliaryTask enqueues the task for out-of-band execution. The
// enqueue is non-blocking and allocation-free and may be called at buffer
// cadence; scheduling a task that is already pending coalesces.
func (c *RenderContext) ScheduleAuxiliaryTask(task AuxiliaryTask) error {
	if status := c.eng.ScheduleAuxiliaryTask(task.handle); status != 0 {
		return errTaskSchedule
	}
	return nil
}
