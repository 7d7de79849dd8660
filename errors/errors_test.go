package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Kind:   KindInitFailed,
				Op:     "Bela_initAudio",
				Status: -1,
				Detail: "invalid settings",
			},
			contains: []string{"init_failed", "Bela_initAudio", "status -1", "invalid settings"},
		},
		{
			name: "minimal error",
			err: &Error{
				Kind: KindTaskScheduleFailed,
			},
			contains: []string{"task_schedule_failed"},
		},
		{
			name: "error with cause",
			err: &Error{
				Kind:   KindPortOpenFailed,
				Op:     "Midi_new",
				Detail: `port "hw:1,0,0"`,
				Cause:  errors.New("no such device"),
			},
			contains: []string{"port_open_failed", "hw:1,0,0", "caused by", "no such device"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Kind:  KindPortOpenFailed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach the cause through the chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Kind:   KindStartFailed,
		Op:     "Bela_startAudio",
		Status: 7,
	}

	if !err.Is(&Error{Kind: KindStartFailed}) {
		t.Error("Is should match same kind regardless of status")
	}
	if err.Is(&Error{Kind: KindInitFailed}) {
		t.Error("Is should not match different kind")
	}
	if err.Is(errors.New("start_failed")) {
		t.Error("Is should not match foreign error types")
	}

	if !errors.Is(err, &Error{Kind: KindStartFailed}) {
		t.Error("errors.Is should match")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InitFailed", func(t *testing.T) {
		err := InitFailed(-2)
		if err.Kind != KindInitFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInitFailed)
		}
		if err.Op != "Bela_initAudio" || err.Status != -2 {
			t.Errorf("Op=%q Status=%d", err.Op, err.Status)
		}
	})

	t.Run("StartFailed", func(t *testing.T) {
		err := StartFailed(1)
		if err.Kind != KindStartFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindStartFailed)
		}
		if err.Op != "Bela_startAudio" || err.Status != 1 {
			t.Errorf("Op=%q Status=%d", err.Op, err.Status)
		}
	})

	t.Run("TaskCreateFailed", func(t *testing.T) {
		err := TaskCreateFailed("level_meter")
		if err.Kind != KindTaskCreateFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTaskCreateFailed)
		}
		if !strings.Contains(err.Detail, "level_meter") {
			t.Errorf("Detail = %q, should name the task", err.Detail)
		}
	})

	t.Run("TaskScheduleFailed", func(t *testing.T) {
		err := TaskScheduleFailed(3)
		if err.Kind != KindTaskScheduleFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTaskScheduleFailed)
		}
		if err.Status != 3 {
			t.Errorf("Status = %d, want 3", err.Status)
		}
	})

	t.Run("PortOpenFailed", func(t *testing.T) {
		cause := errors.New("busy")
		err := PortOpenFailed("hw:1,0,0", cause)
		if err.Kind != KindPortOpenFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindPortOpenFailed)
		}
		if !strings.Contains(err.Detail, "hw:1,0,0") {
			t.Errorf("Detail = %q, should name the port", err.Detail)
		}
		if !errors.Is(err, cause) {
			t.Error("cause not reachable via errors.Is")
		}
	})
}
