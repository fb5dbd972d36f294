package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/seedweave/internal/cli"
	"github.com/vk/seedweave/internal/testutil"
)

func TestRun_Help(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"--help"}))
}

func TestRun_UsageErrorCarriesExitCode(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"--log-format", "xml", "plan.hcl"})
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_ExecutesAPlan(t *testing.T) {
	path := testutil.WritePlanFile(t, `
seeder "print" "hello" {
  arguments {
    message = "hello from seedweave"
  }
}
`)
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"--log-level", "error", "--no-color", path})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "hello from seedweave")
	assert.Contains(t, out.String(), "OK")
}

func TestRun_MissingPlanFile(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"--log-level", "error", "/nonexistent/plan.hcl"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading plan")
}
