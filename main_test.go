package main

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_MAIN") == "1" {
		main()
		return
	}
	os.Exit(m.Run())
}

func TestMainExecution(t *testing.T) {
	testCases := []struct {
		name          string
		env           map[string]string
		occupyPort    bool
		wantExitCode  int
		wantInLog     []string
		checkDuration time.Duration
	}{
		{
			name: "Success",
			env: map[string]string{
				"DEV_MODE": "true",
				"PORT":     "18931",
			},
			wantExitCode: -1,
			wantInLog: []string{
				"configuration loaded",
				"starting server",
			},
			checkDuration: 500 * time.Millisecond,
		},
		{
			name: "Failure - NewAPIConfig fails",
			env: map[string]string{
				"GEOCODE_URL": "not a url",
			},
			wantExitCode: 1,
			wantInLog:    []string{"failed to load configuration"},
		},
		{
			name: "Failure - Server startup fails (port in use)",
			env: map[string]string{
				"PORT": "18932",
			},
			occupyPort:   true,
			wantExitCode: 1,
			wantInLog:    []string{"server startup failed"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.occupyPort {
				listener, err := net.Listen("tcp", ":"+tc.env["PORT"])
				if err != nil {
					t.Skipf("could not listen on port %s: %v", tc.env["PORT"], err)
				}
				t.Cleanup(func() { listener.Close() })
			}

			cmd := exec.Command(os.Args[0], "-test.run=^TestMain$")
			cmd.Env = []string{"GO_TEST_MAIN=1"}
			for k, v := range tc.env {
				cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
			}

			var out bytes.Buffer
			cmd.Stdout = &out
			cmd.Stderr = &out

			if err := cmd.Start(); err != nil {
				t.Fatalf("failed to start subprocess: %v", err)
			}

			var err error
			if tc.checkDuration > 0 {
				time.Sleep(tc.checkDuration)
				if err := cmd.Process.Kill(); err != nil {
					t.Fatalf("failed to kill process: %v", err)
				}
				_ = cmd.Wait()
			} else {
				err = cmd.Wait()
			}

			logs := out.String()

			for _, expectedLog := range tc.wantInLog {
				if !strings.Contains(logs, expectedLog) {
					t.Errorf("expected log to contain %q, but it didn't. Logs:\n%s", expectedLog, logs)
				}
			}

			if tc.wantExitCode != -1 {
				if err == nil {
					t.Fatalf("process exited with code 0, but expected non-zero exit code. Logs:\n%s", logs)
				}
				exitErr, ok := err.(*exec.ExitError)
				if !ok {
					t.Fatalf("expected command to fail with an ExitError, but got %T: %v", err, err)
				}
				if exitErr.ExitCode() != tc.wantExitCode {
					t.Errorf("expected exit code %d, got %d. Logs:\n%s", tc.wantExitCode, exitErr.ExitCode(), logs)
				}
			}
		})
	}
}
