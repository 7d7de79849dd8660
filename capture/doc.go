// Package capture records render buffers to a CBOR stream from outside
// the real-time thread.
//
// The render path may not allocate, block, or touch the filesystem, so
// recording is split across the two execution contexts the engine
// provides: Capture copies samples into a preallocated single-producer
// single-consumer ring on the render thread, while Drain, registered as
// an auxiliary task during setup, encodes pending buffers as CBOR records
// wherever the writer points.
//
//	rec, err := capture.NewRecorder(file, channels, frames, 64)
//	...
//	task, err := ctx.CreateAuxiliaryTask(rec.Drain, 90, "my_app_capture")
//
// and in Render:
//
//	rec.Capture(ctx.AudioIn(), ctx.AudioFramesElapsed())
//	ctx.ScheduleAuxiliaryTask(task)
//
// When the auxiliary task falls behind, buffers are dropped and counted
// instead of stalling the render thread.
package capture
