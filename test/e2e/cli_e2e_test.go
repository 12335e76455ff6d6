package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const benchmarkGolden = `PetriBench Memory Benchmark
------------------------------
Generated 1000 data entries
Fibonacci(50): 50 numbers, last value: 7778742049
Primes up to 1000: 168 found
Largest prime: 997
Total operations: 1218
Benchmark completed successfully
`

// buildProgram compiles ./cmd/<name> from the module root into a temp dir.
func buildProgram(t *testing.T, name string) string {
	t.Helper()
	binName := name
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs with the package directory as CWD.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/"+name)
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build %s: %v", name, err)
	}
	return binPath
}

// cleanEnv drops PETRIBENCH_* variables inherited from the caller.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "PETRIBENCH_") {
			env = append(env, kv)
		}
	}
	return append(env, "NO_COLOR=1")
}

func TestBenchmark_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}
	binPath := buildProgram(t, "benchmark")

	t.Run("Default output is byte-identical", func(t *testing.T) {
		cmd := exec.Command(binPath)
		cmd.Env = cleanEnv()
		out, err := cmd.Output()
		if err != nil {
			t.Fatalf("benchmark failed: %v", err)
		}
		if string(out) != benchmarkGolden {
			t.Errorf("stdout mismatch\ngot:\n%s\nwant:\n%s", out, benchmarkGolden)
		}
	})

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string
		wantCode int
	}{
		{"Help", []string{"--help"}, nil, "usage", 0},
		{"Version", []string{"--version"}, nil, "benchmark", 0},
		{"Env sizing", nil, []string{"PETRIBENCH_SIEVE_LIMIT=100"}, "Primes up to 100: 25 found", 0},
		{"Stats report", []string{"--stats"}, nil, "Resource usage", 0},
		{"Invalid count", []string{"--fib-count", "200"}, nil, "fib-count", 4},
		{"Unknown flag", []string{"--from", "1"}, nil, "not defined", 4},
		{"Oversized sieve", []string{"--sieve-limit", "9223372036854775807"}, nil, "sieve-limit", 4},
		{"Malformed env", nil, []string{"PETRIBENCH_RECORDS=1k"}, "PETRIBENCH_RECORDS", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(cleanEnv(), tt.env...)
			output, err := cmd.CombinedOutput()
			checkResult(t, string(output), err, tt.wantOut, tt.wantCode)
		})
	}
}

func TestFizzBuzz_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}
	binPath := buildProgram(t, "fizzbuzz")

	cmd := exec.Command(binPath)
	cmd.Env = cleanEnv()
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("fizzbuzz failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if len(lines) != 100 {
		t.Fatalf("got %d lines, want 100", len(lines))
	}
	if lines[14] != "FizzBuzz" || lines[8] != "Fizz" || lines[9] != "Buzz" || lines[6] != "7" {
		t.Errorf("unexpected classification in output:\n%s", out)
	}

	cmd = exec.Command(binPath, "--from", "3", "--to", "1")
	cmd.Env = cleanEnv()
	output, err := cmd.CombinedOutput()
	checkResult(t, string(output), err, "from", 4)
}

func checkResult(t *testing.T, outStr string, err error, wantOut string, wantCode int) {
	t.Helper()
	if wantCode == 0 {
		if err != nil {
			t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
		}
	} else {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("Expected exit code %d, got err=%v\nOutput: %s", wantCode, err, outStr)
		}
		if exitErr.ExitCode() != wantCode {
			t.Errorf("Exit code = %d, want %d\nOutput: %s", exitErr.ExitCode(), wantCode, outStr)
		}
	}
	if wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(wantOut)) {
		t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", wantOut, outStr)
	}
}
