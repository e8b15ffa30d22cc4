package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoCommand struct {
	cmd  *cobra.Command
	args []string
	err  error
}

func (e *echoCommand) Meta() *cobra.Command {
	if e.cmd == nil {
		e.cmd = &cobra.Command{
			Use:   "echo",
			Short: "Echo arguments",
		}
	}
	return e.cmd
}

func (e *echoCommand) Execute(cmd *cobra.Command, args []string) error {
	e.args = args
	return e.err
}

func TestCLI_RunsPlugin(t *testing.T) {
	echo := &echoCommand{}
	c := NewCLI("test", "test cli")
	c.RegisterPlugin(echo)
	c.SetArgs([]string{"echo", "a", "b"})

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, []string{"a", "b"}, echo.args)
}

func TestCLI_PluginError(t *testing.T) {
	expected := errors.New("boom")
	c := NewCLI("test", "test cli")
	c.RegisterPlugin(&echoCommand{err: expected})
	c.SetArgs([]string{"echo"})

	assert.ErrorIs(t, c.Run(context.Background()), expected)
}

func TestCLI_Completion(t *testing.T) {
	tests := []struct {
		shell    string
		contains string
	}{
		{shell: "bash", contains: "bash completion"},
		{shell: "zsh", contains: "zsh completion"},
		{shell: "fish", contains: "fish completion"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var out bytes.Buffer
			c := NewCLI("test", "test cli")
			c.RegisterPlugin(&echoCommand{})
			c.SetOutput(&out)
			c.SetArgs([]string{"completion", tt.shell})

			require.NoError(t, c.Run(context.Background()))
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestCLI_CompletionRejectsUnknownShell(t *testing.T) {
	c := NewCLI("test", "test cli")
	c.SetOutput(&bytes.Buffer{})
	c.SetArgs([]string{"completion", "tcsh"})

	assert.Error(t, c.Run(context.Background()))
}
