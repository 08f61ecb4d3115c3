//go:build !js

package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/invaders/sched"
	"github.com/plus3/invaders/sim"
)

// PerformanceStats is the session and timing window.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Render(state *sim.State, scheduler *sched.Scheduler, dt time.Duration) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = float32(dt.Seconds() * 1000)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	imgui.Text(fmt.Sprintf("Outcome: %s", state.Outcome()))
	imgui.Text(fmt.Sprintf("Score: %d", state.Score()))
	direction := "left"
	if state.MovingRight() {
		direction = "right"
	}
	imgui.Text(fmt.Sprintf("Formation heading: %s", direction))
	imgui.Text(fmt.Sprintf("Game clock: %s", scheduler.Now().Truncate(time.Millisecond)))

	stats := state.World().Stats()
	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntities))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg

	if imgui.TreeNodeStr("Pools") {
		if imgui.BeginTableV("PoolTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Live")
			imgui.TableSetupColumn("Slots")
			imgui.TableSetupColumn("Free")
			imgui.TableHeadersRow()

			for _, kind := range stats.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(kind.Kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", kind.Live))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", kind.Cap))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", kind.Free))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Activities") {
		if imgui.BeginTableV("ActivityTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Name")
			imgui.TableSetupColumn("Interval")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("State")
			imgui.TableHeadersRow()

			for _, a := range scheduler.Stats().Activities {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(a.Name)
				imgui.TableNextColumn()
				imgui.Text(a.Interval.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", a.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(a.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(a.MaxDuration.String())
				imgui.TableNextColumn()
				if a.Stopped {
					imgui.Text("stopped")
				} else {
					imgui.Text("running")
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures the wall time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
