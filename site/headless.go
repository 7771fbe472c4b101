package site

import "math"

// Scripted gesture timing in frames.
const (
	scriptSweepFrames = 240 // Pointer circles the stage once per sweep
	scriptDragEvery   = 300 // A drag gesture starts every N frames
	scriptDragFrames  = 20  // Frames a drag gesture lasts
	scriptDragSpan    = 120 // Horizontal travel of a drag in pixels
)

// ScriptedInput returns a deterministic input for frame: the pointer circles
// the orbit stage and periodically drags the carousel left or right.
func (s *Site) ScriptedInput(frame int64) Input {
	cx, cy := s.page.StageCenterX, s.page.StageCenterY-s.camera.Y
	r := float32(min(s.width, s.height)) * 0.3

	theta := 2 * math.Pi * float64(frame%scriptSweepFrames) / scriptSweepFrames
	in := Input{
		X:      cx + r*float32(math.Cos(theta)),
		Y:      cy + r*0.5*float32(math.Sin(theta)),
		Moved:  true,
		Width:  s.width,
		Height: s.height,
	}

	// Alternate drag direction so the selection walks back and forth
	cycle := frame / scriptDragEvery
	step := frame % scriptDragEvery
	if step < scriptDragFrames {
		dir := float32(1)
		if (cycle/2)%2 == 0 {
			dir = -1
		}
		progress := float32(step) / float32(scriptDragFrames-1)
		in.X = cx + dir*scriptDragSpan*progress
		in.Y = cy
		in.Pressed = step == 0
		in.Down = true
		in.Released = step == scriptDragFrames-1
	}
	return in
}

// UpdateHeadless runs one frame with scripted input and no drawing.
func (s *Site) UpdateHeadless() {
	s.Step(s.ScriptedInput(s.frame))
	s.EndFrame()
}
