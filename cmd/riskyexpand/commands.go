package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/emmertex/riskyexpand/internal/backend/wlclip"
	"github.com/emmertex/riskyexpand/internal/backend/ydotool"
	"github.com/emmertex/riskyexpand/internal/config"
	"github.com/emmertex/riskyexpand/internal/dispatch"
	"github.com/emmertex/riskyexpand/internal/engine"
	"github.com/emmertex/riskyexpand/internal/listener"
	"github.com/emmertex/riskyexpand/internal/listener/terminal"
	"github.com/emmertex/riskyexpand/internal/logging"
)

func newRunCmd() *cobra.Command {
	var useTerminal bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the expansion service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService(useTerminal)
		},
	}
	cmd.Flags().BoolVar(&useTerminal, "terminal", false, "read keystrokes from this terminal instead of an input device")
	return cmd
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Install default config files",
		Long:  "Copies commented default trigger, command and settings files into the config directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Install(config.Dir(), force); err != nil {
				return err
			}
			fmt.Printf("Config files are in %s\n", config.Dir())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config files")
	return cmd
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List keyboard device candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := listener.Candidates()
			if err != nil {
				return err
			}
			if len(devices) == 0 {
				fmt.Println("No keyboard devices found (are you running with enough privileges?)")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tNAME\tKEYS")
			for _, d := range devices {
				fmt.Fprintf(w, "%s\t%s\t%d\n", d.Path, d.Name, d.Keys)
			}
			return w.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("riskyexpand %s (%s)\n", version, commit)
		},
	}
}

// runService wires the full pipeline and runs until interrupted.
func runService(useTerminal bool) error {
	settings, err := config.LoadSettings(config.SettingsPath())
	if err != nil {
		return err
	}
	if settings.LogLevel != "" {
		logging.SetLevel(settings.LogLevel)
	}

	snapshot, err := config.Load(config.TriggersPath(), config.CommandsPath())
	if err != nil {
		return err
	}
	if snapshot.Matcher.Len() == 0 {
		fmt.Printf("No triggers configured. Run `riskyexpand init` and edit %s\n", config.TriggersPath())
	}

	checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if !ydotool.DaemonRunning(checkCtx) {
		return fmt.Errorf("the ydotoold daemon is not running; start it with `sudo ydotoold` and retry")
	}

	injector := ydotool.NewInjector()
	clipboard := wlclip.New(injector)
	dispatcher := dispatch.New(clipboard, injector, dispatch.Config{
		CallTimeout: settings.DispatchTimeout,
		QueueSize:   settings.PendingDispatches,
	})

	var lis listener.Listener
	if useTerminal {
		lis, err = terminal.New(settings.QueueSize)
	} else {
		lis, err = listener.NewEvdev(settings.Device, settings.QueueSize)
	}
	if err != nil {
		return err
	}

	eng, err := engine.New(engine.Config{
		TriggersPath: config.TriggersPath(),
		CommandsPath: config.CommandsPath(),
		WatchConfig:  true,
	}, config.NewStore(snapshot), lis, dispatcher)
	if err != nil {
		lis.Close()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return eng.Run(ctx)
}
