package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"rusty-sweeper/internal/disktree"
	"rusty-sweeper/internal/scanner"
	"rusty-sweeper/internal/sizefmt"
)

var (
	scanMaxDepth int
	scanTop      int
	scanAll      bool
	scanCross    bool
	scanJobs     int
	scanJSON     bool
	scanSummary  bool
	scanSortFlag string
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree and report disk usage",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().IntVarP(&scanMaxDepth, "max-depth", "d", 3, "maximum directory depth to descend")
	scanCmd.Flags().IntVarP(&scanTop, "top", "n", 20, "number of largest entries to report in human/summary output")
	scanCmd.Flags().BoolVarP(&scanAll, "all", "a", false, "include hidden (dot) entries")
	scanCmd.Flags().BoolVarP(&scanCross, "cross", "x", false, "cross filesystem/mount boundaries while scanning")
	scanCmd.Flags().IntVarP(&scanJobs, "jobs", "j", 0, "parallel scan workers (0 = platform default)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "emit machine-readable JSON instead of a text report")
	scanCmd.Flags().BoolVar(&scanSummary, "summary", false, "with --json, emit a flat top-N list (with size_human) instead of the full tree")
	scanCmd.Flags().StringVar(&scanSortFlag, "sort", "size", "sort order: size, name, or mtime")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	sortKey, err := sortKeyFromFlag(scanSortFlag)
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	opts := scanner.Options{
		MaxDepth:      scanMaxDepth,
		IncludeHidden: scanAll,
		OneFileSystem: !scanCross,
		Workers:       scanJobs,
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tree, err := scanner.NewParallelScanner().Scan(ctx, root, opts, nil)
	if err != nil {
		if ctx.Err() != nil {
			return withExitCode(ExitInterrupted, fmt.Errorf("scan interrupted: %w", err))
		}
		log.Error().Err(err).Str("path", root).Msg("scan failed")
		return withExitCode(ExitGeneralError, err)
	}
	tree.Sort(sortKey)

	switch {
	case scanJSON && scanSummary:
		return printScanSummaryJSON(tree)
	case scanJSON:
		return printScanTreeJSON(tree)
	default:
		return printScanReport(tree)
	}
}

func sortKeyFromFlag(s string) (disktree.SortKey, error) {
	switch s {
	case "size":
		return disktree.SortBySize, nil
	case "name":
		return disktree.SortByName, nil
	case "mtime":
		return disktree.SortByMTime, nil
	default:
		return 0, fmt.Errorf("invalid --sort value %q (want size, name, or mtime)", s)
	}
}

// jsonEntry mirrors SPEC_FULL §6's JSON scan-output shape.
type jsonEntry struct {
	Path       string      `json:"path"`
	Size       int64       `json:"size"`
	DiskUsage  int64       `json:"disk_usage"`
	FileCount  int64       `json:"file_count"`
	DirCount   int64       `json:"dir_count"`
	MTime      *time.Time  `json:"mtime,omitempty"`
	Children   []jsonEntry `json:"children,omitempty"`
	Error      string      `json:"error,omitempty"`
	SizeHuman  string      `json:"size_human,omitempty"`
}

func toJSONEntry(e *disktree.Entry, withSizeHuman bool) jsonEntry {
	je := jsonEntry{
		Path:      e.Path,
		Size:      e.Size,
		DiskUsage: e.DiskUsage,
		FileCount: e.FileCount,
		DirCount:  e.DirCount,
		Error:     e.Error,
	}
	if e.HasModTime {
		t := e.ModTime
		je.MTime = &t
	}
	if withSizeHuman {
		je.SizeHuman = sizefmt.FormatSize(e.Size)
	}
	for _, c := range e.Children {
		je.Children = append(je.Children, toJSONEntry(c, withSizeHuman))
	}
	return je
}

func printScanTreeJSON(tree *disktree.Entry) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSONEntry(tree, false))
}

func printScanSummaryJSON(tree *disktree.Entry) error {
	entries := collectEntries(tree, nil)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Size > entries[j].Size })
	if len(entries) > scanTop {
		entries = entries[:scanTop]
	}

	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		je := toJSONEntry(e, true)
		je.Children = nil
		out = append(out, je)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printScanReport(tree *disktree.Entry) error {
	fmt.Printf("%s  %s\n", sizefmt.FormatSize(tree.Size), tree.Path)

	entries := collectEntries(tree, nil)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Size > entries[j].Size })
	if len(entries) > scanTop {
		entries = entries[:scanTop]
	}
	for _, e := range entries {
		marker := " "
		if e.IsDir {
			marker = "/"
		}
		fmt.Printf("  %10s  %s%s\n", sizefmt.FormatSize(e.Size), e.Path, marker)
	}
	return nil
}

func collectEntries(e *disktree.Entry, out []*disktree.Entry) []*disktree.Entry {
	for _, c := range e.Children {
		out = append(out, c)
		out = collectEntries(c, out)
	}
	return out
}
