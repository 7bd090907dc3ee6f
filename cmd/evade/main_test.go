package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/diff"
	"oss.terrastruct.com/xos"

	"oss.terrastruct.com/evade"
	"oss.terrastruct.com/evade/lib/geo"
	"oss.terrastruct.com/evade/lib/version"
	"oss.terrastruct.com/evade/lib/xmain"
)

func runCLI(t *testing.T, environ []string, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	ms := xmain.NewState("evade", args, strings.NewReader(""), stdout, stderr, xos.NewEnv(environ))
	err := run(context.Background(), ms)
	return stdout.String(), stderr.String(), err
}

func TestCLI(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		environ []string
		args    []string
		run     func(t *testing.T, stdout string, err error)
	}{
		{
			name: "version",
			args: []string{"--version"},
			run: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				diff.AssertStringEq(t, version.Version+"\n", stdout)
			},
		},
		{
			name: "help",
			args: []string{"--help"},
			run: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				assert.Contains(t, stdout, "--arena")
				assert.Contains(t, stdout, "$EVADE_SEED")
			},
		},
		{
			name: "no_fills_arena",
			args: []string{"--arena=96x44", "--no=96x44", "--attempts=3", "--seed=1"},
			run: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				lines := strings.Split(strings.TrimSpace(stdout), "\n")
				require.Len(t, lines, 4)
				diff.AssertStringEq(t, "start: no at (0, 0)", lines[0])
				assert.True(t, strings.HasPrefix(lines[1], "attempt 1: no at (0, 0), yes x1.08, "), lines[1])
				assert.True(t, strings.HasPrefix(lines[2], "attempt 2: no at (0, 0), yes x1.16, "), lines[2])
				assert.True(t, strings.HasPrefix(lines[3], "attempt 3: no at (0, 0), yes x1.24, "), lines[3])
			},
		},
		{
			name:    "json_from_env",
			environ: []string{"EVADE_JSON=1", "EVADE_SEED=9", "EVADE_ATTEMPTS=20"},
			args:    []string{"--arena=300x300", "--no=50x20", "--yes=0,0,300x260", "--avoid", "--samples=50"},
			run: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				lines := strings.Split(strings.TrimSpace(stdout), "\n")
				require.Len(t, lines, 21)

				for i, line := range lines {
					var ev struct {
						Event    string    `json:"event"`
						Position geo.Point `json:"position"`
						Attempt  int       `json:"attempt"`
						Scale    float64   `json:"scale"`
					}
					require.NoError(t, json.Unmarshal([]byte(line), &ev))
					assert.Equal(t, i, ev.Attempt)
					if i == 0 {
						assert.Equal(t, "start", ev.Event)
						assert.Equal(t, geo.NewPoint(125, 140), ev.Position)
						continue
					}
					assert.Equal(t, "attempt", ev.Event)
					assert.True(t, evade.Contained(ev.Position, geo.NewSize(300, 300), geo.NewSize(50, 20)))
					assert.GreaterOrEqual(t, ev.Position.Y, 260.)
				}
			},
		},
		{
			name: "same_seed_same_output",
			args: []string{"--seed=1234", "--attempts=10", "--snap", "--hearts=4"},
			run: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				again, _, err := runCLI(t, nil, "--seed=1234", "--attempts=10", "--snap", "--hearts=4")
				require.NoError(t, err)
				diff.AssertStringEq(t, stdout, again)
				assert.Equal(t, 4, strings.Count(stdout, "heart: "))
			},
		},
		{
			name: "bad_arena",
			args: []string{"--arena=300"},
			run: func(t *testing.T, stdout string, err error) {
				var uerr xmain.UsageError
				require.True(t, errors.As(err, &uerr), "%v", err)
				assert.Contains(t, err.Error(), "--arena")
			},
		},
		{
			name: "bad_yes",
			args: []string{"--yes=1,2"},
			run: func(t *testing.T, stdout string, err error) {
				var uerr xmain.UsageError
				require.True(t, errors.As(err, &uerr), "%v", err)
				assert.Contains(t, err.Error(), "--yes")
			},
		},
		{
			name:    "bad_env",
			environ: []string{"EVADE_SAMPLES=many"},
			run: func(t *testing.T, stdout string, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "EVADE_SAMPLES")
			},
		},
		{
			name: "unexpected_argument",
			args: []string{"valentine"},
			run: func(t *testing.T, stdout string, err error) {
				var uerr xmain.UsageError
				require.True(t, errors.As(err, &uerr), "%v", err)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stdout, _, err := runCLI(t, tc.environ, tc.args...)
			tc.run(t, stdout, err)
		})
	}
}
