package execution

import (
	"testing"
)

func TestExecutionString(t *testing.T) {
	tests := []struct {
		name string
		exec Execution
		want string
	}{
		{
			name: "single command",
			exec: Command("git status"),
			want: "git status",
		},
		{
			name: "and sequence",
			exec: And{"go build ./...", "go test ./..."},
			want: "go build ./... && go test ./...",
		},
		{
			name: "and with one item",
			exec: And{"make"},
			want: "make",
		},
		{
			name: "or sequence",
			exec: Or{"pbpaste", "xclip -o"},
			want: "pbpaste || xclip -o",
		},
		{
			name: "pipeline sequence",
			exec: Pipeline{"ps aux", "grep ssh"},
			want: "ps aux | grep ssh",
		},
		{
			name: "empty and",
			exec: And{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.exec.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name         string
		status       Status
		wantSuccess  bool
		wantExitCode int
	}{
		{
			name:         "clean exit",
			status:       Status{Code: 0},
			wantSuccess:  true,
			wantExitCode: 0,
		},
		{
			name:         "non-zero exit",
			status:       Status{Code: 3},
			wantSuccess:  false,
			wantExitCode: 3,
		},
		{
			name:         "killed by signal",
			status:       Status{Code: -1, Signaled: true},
			wantSuccess:  false,
			wantExitCode: 1,
		},
		{
			name:         "signaled with zero code still fails",
			status:       Status{Code: 0, Signaled: true},
			wantSuccess:  false,
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Success(); got != tt.wantSuccess {
				t.Errorf("Success() = %v, want %v", got, tt.wantSuccess)
			}
			if got := tt.status.ExitCode(); got != tt.wantExitCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantExitCode)
			}
		})
	}
}

func TestOutcomeSuccess(t *testing.T) {
	if !(Outcome{Code: 0}).Success() {
		t.Error("Outcome{Code: 0}.Success() = false, want true")
	}
	if (Outcome{Code: 2}).Success() {
		t.Error("Outcome{Code: 2}.Success() = true, want false")
	}
}

func TestSpawnErrorUnwrap(t *testing.T) {
	underlying := &testError{msg: "no such file or directory"}
	err := &SpawnError{Command: "gti", Err: underlying}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
	want := `failed to execute command "gti": no such file or directory`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
