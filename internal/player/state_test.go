package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("State.IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanPause(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanPause(); got != tt.want {
				t.Errorf("State.CanPause() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanResume(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, false},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanResume(); got != tt.want {
				t.Errorf("State.CanResume() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestMock_StateTransitions validates the state machine using the Mock engine.
func TestMock_StateTransitions(t *testing.T) {
	t.Run("Stopped to Paused via Load", func(t *testing.T) {
		m := NewMock()
		if m.State() != Stopped {
			t.Fatalf("initial state = %v, want Stopped", m.State())
		}

		m.Load("/test.mp3")

		if m.State() != Paused {
			t.Errorf("state after Load = %v, want Paused", m.State())
		}
		if !m.Loaded() {
			t.Error("Loaded() = false after Load")
		}
	})

	t.Run("Paused to Playing via Play", func(t *testing.T) {
		m := NewMock()
		m.Load("/test.mp3")

		m.Play()

		if m.State() != Playing {
			t.Errorf("state after Play = %v, want Playing", m.State())
		}
		if m.Paused() {
			t.Error("Paused() = true while Playing")
		}
	})

	t.Run("Playing to Paused via Pause", func(t *testing.T) {
		m := NewMock()
		m.Load("/test.mp3")
		m.Play()

		m.Pause()

		if m.State() != Paused {
			t.Errorf("state after Pause = %v, want Paused", m.State())
		}
	})

	t.Run("Playing to Paused via Load", func(t *testing.T) {
		m := NewMock()
		m.Load("/a.mp3")
		m.Play()

		m.Load("/b.mp3")

		if m.State() != Paused {
			t.Errorf("state after reload = %v, want Paused", m.State())
		}
		if m.Source() != "/b.mp3" {
			t.Errorf("Source() = %q, want /b.mp3", m.Source())
		}
	})
}

func TestMock_NoOpTransitions(t *testing.T) {
	t.Run("Play when Stopped is no-op", func(t *testing.T) {
		m := NewMock()

		m.Play()

		if m.State() != Stopped {
			t.Errorf("state = %v, want Stopped", m.State())
		}
	})

	t.Run("Pause when Stopped is no-op", func(t *testing.T) {
		m := NewMock()

		m.Pause()

		if m.State() != Stopped {
			t.Errorf("state = %v, want Stopped", m.State())
		}
	})

	t.Run("Pause when Paused is no-op", func(t *testing.T) {
		m := NewMock()
		m.Load("/test.mp3")

		m.Pause()

		if m.State() != Paused {
			t.Errorf("state = %v, want Paused", m.State())
		}
	})
}
