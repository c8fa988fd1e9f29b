package main

import "testing"

func TestStepArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"default", []string{"down"}, 1, false},
		{"explicit", []string{"down", "3"}, 3, false},
		{"zero", []string{"down", "0"}, 0, true},
		{"not a number", []string{"down", "all"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stepArg(tt.args, 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("stepArg(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("stepArg(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestRunRequiresCommand(t *testing.T) {
	if err := run(nil); err == nil {
		t.Error("expected usage error without a command")
	}
}
