package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rusty-sweeper/internal/clean"
	"rusty-sweeper/internal/detect"
	"rusty-sweeper/internal/project"
	"rusty-sweeper/internal/sizefmt"
)

var (
	cleanDryRun    bool
	cleanMaxDepth  int
	cleanTypes     string
	cleanExcludes  []string
	cleanAgeDays   int
	cleanForce     bool
	cleanJobs      int
	cleanSizeOnly  bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Detect and reclaim build-tool artifacts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanDryRun, "dry-run", "n", false, "report what would be cleaned without touching the filesystem")
	cleanCmd.Flags().IntVarP(&cleanMaxDepth, "max-depth", "d", 10, "maximum directory depth to search for projects")
	cleanCmd.Flags().StringVarP(&cleanTypes, "types", "t", "", "comma-separated detector ids to restrict to (empty means all)")
	cleanCmd.Flags().StringSliceVarP(&cleanExcludes, "exclude", "e", nil, "directory names to exclude from the search (repeatable)")
	cleanCmd.Flags().IntVarP(&cleanAgeDays, "age-days", "a", 0, "skip projects modified more recently than this many days ago")
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, "skip the confirmation prompt")
	cleanCmd.Flags().IntVarP(&cleanJobs, "jobs", "j", 4, "number of projects cleaned concurrently")
	cleanCmd.Flags().BoolVar(&cleanSizeOnly, "size-only", false, "report total reclaimable size and exit without cleaning")
	rootCmd.AddCommand(cleanCmd)
}

// zerologLogAdapter satisfies clean.Logger with *zerolog.Logger's
// structured call shape.
type zerologLogAdapter struct{}

func (zerologLogAdapter) Warn(msg string, keyvals ...any) {
	evt := log.Warn()
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, _ := keyvals[i].(string)
		evt = evt.Interface(key, keyvals[i+1])
	}
	evt.Msg(msg)
}

func runClean(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	registry := detect.NewDefaultRegistry()

	var detectorIDs []string
	if cleanTypes != "" {
		for _, id := range strings.Split(cleanTypes, ",") {
			detectorIDs = append(detectorIDs, strings.TrimSpace(id))
		}
	}

	projects, err := project.Scan(root, registry, project.ScanOptions{
		MaxDepth:    cleanMaxDepth,
		Exclude:     cleanExcludes,
		MinAgeDays:  cleanAgeDays,
		DetectorIDs: detectorIDs,
	})
	if err != nil {
		log.Error().Err(err).Str("path", root).Msg("project scan failed")
		return withExitCode(ExitGeneralError, err)
	}

	if len(projects) == 0 {
		fmt.Println("no reclaimable projects found")
		return nil
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].ArtifactSize > projects[j].ArtifactSize })

	var total int64
	for _, p := range projects {
		total += p.ArtifactSize
	}

	if cleanSizeOnly {
		for _, p := range projects {
			fmt.Printf("%10s  %s  (%s)\n", sizefmt.FormatSize(p.ArtifactSize), p.Path, p.DetectorID)
		}
		fmt.Printf("total reclaimable: %s across %d projects\n", sizefmt.FormatSize(total), len(projects))
		return nil
	}

	if !cleanForce && !cleanDryRun {
		if !confirmClean(projects, total) {
			fmt.Println("aborted")
			return nil
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	executor := clean.NewExecutor(zerologLogAdapter{})
	orchestrator := clean.NewOrchestrator(executor, cleanJobs)

	results, _ := orchestrator.Run(ctx, projects, clean.Options{
		DryRun:                cleanDryRun,
		NativeCommandsEnabled: true,
	})

	if ctx.Err() != nil {
		return withExitCode(ExitInterrupted, context.Cause(ctx))
	}

	summary := clean.Summarize(results)
	for _, r := range results {
		fmt.Printf("%-8s %10s  %s  %s\n", r.Outcome, sizefmt.FormatSize(r.FreedBytes), r.ProjectPath, r.Message)
	}
	fmt.Printf("freed %s across %d projects (%d failed, %d skipped)\n",
		sizefmt.FormatSize(summary.TotalFreed), summary.Succeeded, summary.Failed, summary.Skipped)

	if summary.Failed > 0 {
		return withExitCode(ExitPartialFailure, fmt.Errorf("%d project(s) failed to clean", summary.Failed))
	}
	return nil
}

func confirmClean(projects []project.DetectedProject, total int64) bool {
	fmt.Printf("the following %d project(s) will be cleaned, freeing up to %s:\n", len(projects), sizefmt.FormatSize(total))
	for _, p := range projects {
		fmt.Printf("  %10s  %s  (%s)\n", sizefmt.FormatSize(p.ArtifactSize), p.Path, p.DetectorID)
	}
	fmt.Print("proceed? [y/N] ")

	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}
