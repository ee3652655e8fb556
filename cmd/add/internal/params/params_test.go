package params

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestNewAddParamsWithCobraBindings(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStart  string
		wantEnd    string
		wantNumber int
	}{
		{
			name:       "short and long flags",
			args:       []string{"-s", "Moscow", "--end", "Kazan", "-n", "15"},
			wantStart:  "Moscow",
			wantEnd:    "Kazan",
			wantNumber: 15,
		},
		{
			name:       "empty and blank endpoints are kept as given",
			args:       []string{"--start", "", "-e", "  ", "-n", "0"},
			wantStart:  "",
			wantEnd:    "  ",
			wantNumber: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "add"}
			p := NewAddParamsWithCobraBindings(cmd)

			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}
			if p.Start() != tt.wantStart || p.End() != tt.wantEnd || p.Number() != tt.wantNumber {
				t.Errorf("bound params = (%q, %q, %d), want (%q, %q, %d)",
					p.Start(), p.End(), p.Number(), tt.wantStart, tt.wantEnd, tt.wantNumber)
			}
			if err := cmd.ValidateRequiredFlags(); err != nil {
				t.Errorf("ValidateRequiredFlags() error = %v", err)
			}
		})
	}
}

func TestNewAddParamsWithCobraBindings_missingFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "add"}
	NewAddParamsWithCobraBindings(cmd)

	if err := cmd.ParseFlags([]string{"-s", "Moscow", "-n", "15"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if err := cmd.ValidateRequiredFlags(); err == nil {
		t.Errorf("ValidateRequiredFlags() without --end returned nil error")
	}
}

func TestNewAddParams(t *testing.T) {
	p := NewAddParams("", "Kazan", 7)
	if p.Start() != "" || p.End() != "Kazan" || p.Number() != 7 {
		t.Errorf("NewAddParams() = (%q, %q, %d), want (\"\", Kazan, 7)", p.Start(), p.End(), p.Number())
	}
}
