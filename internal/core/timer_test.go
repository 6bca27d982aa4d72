package core

import "testing"

func TestSpeedToWait(t *testing.T) {
	cases := []struct {
		speed int
		want  int
	}{
		{0, 60},
		{1, 59},
		{50, 30},
		{98, 1},
		{99, 1},
		{-10, 60},
		{500, 1},
	}
	for _, tc := range cases {
		if got := SpeedToWait(tc.speed); got != tc.want {
			t.Fatalf("SpeedToWait(%d) = %d, want %d", tc.speed, got, tc.want)
		}
	}
}

func TestSpeedToWaitMonotonic(t *testing.T) {
	prev := SpeedToWait(MinSpeed)
	for s := MinSpeed + 1; s <= MaxSpeed; s++ {
		cur := SpeedToWait(s)
		if cur > prev {
			t.Fatalf("wait increased from %d to %d at speed %d", prev, cur, s)
		}
		prev = cur
	}
}

func TestFrameGateCadence(t *testing.T) {
	gate := NewFrameGate(3)
	var fired []int
	for frame := 0; frame < 12; frame++ {
		if gate.Tick() {
			fired = append(fired, frame)
		}
	}
	want := []int{3, 7, 11}
	if len(fired) != len(want) {
		t.Fatalf("fired on %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired on %v, want %v", fired, want)
		}
	}
}

func TestFrameGateZeroWaitFiresEveryFrame(t *testing.T) {
	gate := NewFrameGate(-4)
	if gate.Wait() != 0 {
		t.Fatalf("negative wait should clamp to 0, got %d", gate.Wait())
	}
	for i := 0; i < 5; i++ {
		if !gate.Tick() {
			t.Fatalf("frame %d did not fire with zero wait", i)
		}
	}
}

func TestFrameGateReset(t *testing.T) {
	gate := NewFrameGate(2)
	gate.Tick()
	gate.Tick()
	gate.Reset()
	if gate.Tick() || gate.Tick() {
		t.Fatal("gate fired before counting wait frames after Reset")
	}
	if !gate.Tick() {
		t.Fatal("gate should fire after wait frames")
	}
}

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Min: 2, Max: 10, HasMin: true, HasMax: true}
	if got := ctrl.Clamp(0); got != 2 {
		t.Fatalf("Clamp(0) = %d, want 2", got)
	}
	if got := ctrl.Clamp(11); got != 10 {
		t.Fatalf("Clamp(11) = %d, want 10", got)
	}
	if got := (ParameterControl{}).Clamp(-7); got != -7 {
		t.Fatalf("unbounded Clamp(-7) = %d", got)
	}
}

func TestParameterControlAdjust(t *testing.T) {
	speed := ParameterControl{Step: 5, Min: MinSpeed, Max: MaxSpeed, HasMin: true, HasMax: true}
	columns := ParameterControl{Step: 2, Min: 3, HasMin: true, WholeSteps: true}
	cases := []struct {
		name      string
		ctrl      ParameterControl
		cur, dir  int
		want      int
		wantApply bool
	}{
		{"speed up", speed, 50, 1, 55, true},
		{"speed clamps to max", speed, 97, 1, MaxSpeed, true},
		{"speed at max", speed, MaxSpeed, 1, MaxSpeed, false},
		{"speed clamps to min", speed, 3, -1, MinSpeed, true},
		{"columns down", columns, 5, -1, 3, true},
		{"columns below floor", columns, 4, -1, 4, false},
		{"columns at floor", columns, 3, -1, 3, false},
		{"columns up from floor", columns, 3, 1, 5, true},
		{"no direction", columns, 9, 0, 9, false},
		{"default step", ParameterControl{}, 0, -1, -1, true},
	}
	for _, tc := range cases {
		got, ok := tc.ctrl.Adjust(tc.cur, tc.dir)
		if got != tc.want || ok != tc.wantApply {
			t.Fatalf("%s: Adjust(%d, %d) = %d, %v, want %d, %v", tc.name, tc.cur, tc.dir, got, ok, tc.want, tc.wantApply)
		}
	}
}
