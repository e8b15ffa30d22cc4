package cliplugins

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"wordwatch/internal/config"
	"wordwatch/internal/watcher"
	"wordwatch/internal/words"
)

// WordsCommand prints the word set of a file once.
type WordsCommand struct {
	cmd *cobra.Command
	cfg *config.Config
	fs  afero.Fs
}

func NewWordsCommand(cfg *config.Config, fs afero.Fs) *WordsCommand {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &WordsCommand{cfg: cfg, fs: fs}
}

func (c *WordsCommand) Meta() *cobra.Command {
	if c.cmd != nil {
		return c.cmd
	}
	c.cmd = &cobra.Command{
		Use:   "words <file>",
		Short: "Print the word set of a file",
		Args:  cobra.ExactArgs(1),
	}
	c.cmd.Flags().StringP("delimiter", "d", "", "word delimiter (overrides config)")
	c.cmd.Flags().Bool("skip-empty", false, "drop empty words")
	return c.cmd
}

func (c *WordsCommand) Execute(cmd *cobra.Command, args []string) error {
	wc := c.cfg.Watch
	if err := applyTokenFlags(cmd, &wc); err != nil {
		return err
	}

	lines, err := watcher.NewFSReader(c.fs).ReadLines(args[0])
	if err != nil {
		return err
	}

	tokens := words.Tokenize(lines, wc.DelimiterRune())
	if wc.SkipEmptyTokens {
		tokens = words.WithoutEmpty(tokens)
	}

	out := cmd.OutOrStdout()
	for _, word := range words.Reconcile(words.Empty, tokens).Words() {
		fmt.Fprintf(out, "%q\n", word)
	}
	return nil
}

// applyTokenFlags overrides delimiter and empty token handling from flags.
func applyTokenFlags(cmd *cobra.Command, wc *config.WatchConfig) error {
	if cmd.Flags().Changed("delimiter") {
		d, err := cmd.Flags().GetString("delimiter")
		if err != nil {
			return fmt.Errorf("flag --delimiter failed: %w", err)
		}
		wc.Delimiter = d
	}
	if cmd.Flags().Changed("skip-empty") {
		skip, err := cmd.Flags().GetBool("skip-empty")
		if err != nil {
			return fmt.Errorf("flag --skip-empty failed: %w", err)
		}
		wc.SkipEmptyTokens = skip
	}
	return wc.Validate()
}
