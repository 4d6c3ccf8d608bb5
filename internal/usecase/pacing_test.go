package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestUniformPacing_Bounds(t *testing.T) {
	cases := []struct {
		name     string
		min, max time.Duration
	}{
		{"outreach default", 5 * time.Second, 15 * time.Second},
		{"search default", 2 * time.Second, 5 * time.Second},
		{"swapped bounds", 15 * time.Second, 5 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := tc.min, tc.max
			if hi < lo {
				lo, hi = hi, lo
			}
			next := UniformPacing(tc.min, tc.max)
			spread := false
			first := next()
			for i := 0; i < 1000; i++ {
				d := next()
				if d < lo || d > hi {
					t.Fatalf("draw %s outside %s..%s", d, lo, hi)
				}
				if d != first {
					spread = true
				}
			}
			if !spread {
				t.Fatalf("expected varied delays, always got %s", first)
			}
		})
	}
}

func TestUniformPacing_Fixed(t *testing.T) {
	next := UniformPacing(3*time.Second, 3*time.Second)
	for i := 0; i < 10; i++ {
		if d := next(); d != 3*time.Second {
			t.Fatalf("expected 3s, got %s", d)
		}
	}
	if d := NoPacing()(); d != 0 {
		t.Fatalf("NoPacing returned %s", d)
	}
}

func TestPause(t *testing.T) {
	if err := pause(context.Background(), 0); err != nil {
		t.Fatalf("zero pause: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := pause(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("pause ignored cancellation")
	}
}
