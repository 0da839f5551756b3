package benchmark

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantOut []string
	}{
		{"success", nil, []string{"[Benchmark] Running: mimic generate", "[Benchmark] Time Elapsed:", "[Benchmark] GC Cycles:"}},
		{"failure", errors.New("boom"), []string{"[Benchmark] Failed: boom"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			called := false
			err := Run(&buf, "mimic generate", func() error {
				called = true
				return tt.err
			})
			if !called {
				t.Fatal("wrapped function not called")
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Run() error = %v, want %v", err, tt.err)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}
