package cliplugins

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"wordwatch/internal/config"
	"wordwatch/internal/lib/logger/sl"
	"wordwatch/internal/watcher"
	"wordwatch/internal/words"
)

// WatchCommand watches one file and prints every word set change until the
// command context is cancelled.
type WatchCommand struct {
	cmd    *cobra.Command
	cfg    *config.Config
	logger *slog.Logger
}

func NewWatchCommand(cfg *config.Config, logger *slog.Logger) *WatchCommand {
	return &WatchCommand{cfg: cfg, logger: logger}
}

func (w *WatchCommand) Meta() *cobra.Command {
	if w.cmd != nil {
		return w.cmd
	}
	w.cmd = &cobra.Command{
		Use:   "watch [file]",
		Short: "Watch a file and print its word set on every change",
		Long: `Watch a delimiter separated file. Every modification or creation rereads the file
and prints the reconciled word set; deleting the file clears it.`,
		Args: cobra.MaximumNArgs(1),
	}
	w.cmd.Flags().StringP("delimiter", "d", "", "word delimiter (overrides config)")
	w.cmd.Flags().Bool("skip-empty", false, "drop empty words")
	w.cmd.Flags().Duration("debounce", 0, "coalesce bursts of writes (overrides config)")
	return w.cmd
}

func (w *WatchCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	watchCfg := *w.cfg
	if len(args) == 1 {
		watchCfg.Watch.Path = args[0]
	}
	if watchCfg.Watch.Path == "" {
		return fmt.Errorf("file path is required (argument or watch.path)")
	}
	if err := applyTokenFlags(cmd, &watchCfg.Watch); err != nil {
		return err
	}
	if cmd.Flags().Changed("debounce") {
		d, err := cmd.Flags().GetDuration("debounce")
		if err != nil {
			return fmt.Errorf("flag --debounce failed: %w", err)
		}
		watchCfg.Watch.Debounce = d
	}

	fw, err := watcher.New(watchCfg.Watch.Path, watchCfg.WatcherConfig(w.logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var outMu sync.Mutex
	fw.Subscribe(func(n words.ChangeNotification) {
		outMu.Lock()
		defer outMu.Unlock()
		printNotification(out, n, fw.CurrentWords())
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for err := range fw.Errors() {
			outMu.Lock()
			printError(cmd.ErrOrStderr(), err)
			outMu.Unlock()
		}
	}()

	<-ctx.Done()

	if err := fw.Close(); err != nil {
		w.logger.Error("failed to close watcher", sl.Err(err))
	}
	<-done

	w.logger.Info("watch finished", slog.Any("stats", fw.Stats()))
	return nil
}
