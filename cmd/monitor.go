package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rusty-sweeper/internal/daemon"
	"rusty-sweeper/internal/monitor"
	"rusty-sweeper/internal/notify"
)

var (
	monitorDaemonize bool
	monitorInterval  int
	monitorWarn      int
	monitorCritical  int
	monitorMounts    []string
	monitorOnce      bool
	monitorNotify    string
	monitorStop      bool
	monitorStatus    bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch mounted filesystems and alert when disk space runs low",
	RunE:  runMonitor,
}

func init() {
	monitorCmd.Flags().BoolVarP(&monitorDaemonize, "daemonize", "d", false, "detach and run in the background")
	monitorCmd.Flags().IntVarP(&monitorInterval, "interval", "i", 300, "seconds between checks")
	monitorCmd.Flags().IntVarP(&monitorWarn, "warn", "w", 80, "warning threshold percent")
	monitorCmd.Flags().IntVarP(&monitorCritical, "critical", "C", 90, "critical threshold percent")
	monitorCmd.Flags().StringArrayVarP(&monitorMounts, "mount", "m", nil, "mount point to watch (repeatable; default is all mounts)")
	monitorCmd.Flags().BoolVar(&monitorOnce, "once", false, "check once and exit instead of looping")
	monitorCmd.Flags().StringVar(&monitorNotify, "notify", "auto", "notification backend: auto, dbus, notify-send, i3-nagbar, or stderr")
	monitorCmd.Flags().BoolVar(&monitorStop, "stop", false, "stop a running background monitor")
	monitorCmd.Flags().BoolVar(&monitorStatus, "status", false, "report whether a background monitor is running")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	switch {
	case monitorStop:
		return runMonitorStop()
	case monitorStatus:
		return runMonitorStatus()
	}

	if monitorWarn >= monitorCritical {
		return withExitCode(ExitConfigError, fmt.Errorf("warn threshold (%d) must be less than critical threshold (%d)", monitorWarn, monitorCritical))
	}

	cfg := monitor.Config{
		Interval:        time.Duration(monitorInterval) * time.Second,
		WarnPercent:     float64(monitorWarn),
		CriticalPercent: float64(monitorCritical),
		MountPoints:     monitorMounts,
		NotifyPref:      notify.Preference(monitorNotify),
		Once:            monitorOnce,
		ConfigPath:      viper.ConfigFileUsed(),
	}

	if monitorDaemonize {
		isParent, err := daemon.Daemonize(os.Args[1:])
		if err != nil {
			return withExitCode(ExitGeneralError, fmt.Errorf("daemonize: %w", err))
		}
		if isParent {
			fmt.Println("monitor started in the background")
			return nil
		}
	}

	chain := notify.NewDefaultChain(cfg.NotifyPref)
	m := monitor.New(cfg, chain)

	running, reload := m.Flags()
	stopSignals := daemon.WireSignals(running, reload)
	defer stopSignals()

	if err := m.Run(cmd.Context()); err != nil {
		log.Error().Err(err).Msg("monitor loop exited with error")
		return withExitCode(ExitGeneralError, err)
	}
	return nil
}

func runMonitorStop() error {
	stopped, err := daemon.Stop()
	if err != nil {
		return withExitCode(ExitGeneralError, fmt.Errorf("stop monitor: %w", err))
	}
	if stopped {
		fmt.Println("monitor stopped")
	} else {
		fmt.Println("no monitor was running")
	}
	return nil
}

func runMonitorStatus() error {
	pid, ok, err := daemon.Status()
	if err != nil {
		return withExitCode(ExitGeneralError, fmt.Errorf("monitor status: %w", err))
	}
	if !ok {
		fmt.Println("monitor is not running")
		return nil
	}
	fmt.Printf("monitor is running (pid %d)\n", pid)
	return nil
}
