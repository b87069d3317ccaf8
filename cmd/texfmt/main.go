package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dgallion1/texfmt/internal/driver"
	"github.com/dgallion1/texfmt/internal/indent"
)

var rootCmd = &cobra.Command{
	Use:   "texfmt [flags] <file> [file...]",
	Short: "Format LaTeX source files with consistent indentation",
	Long: `texfmt reindents LaTeX source so that environment bodies and the
bodies of chapters, sections, subsections and subsubsections each add
one indent level. By default the formatted text is printed to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing to stdout")
	rootCmd.Flags().Bool("backup", false, "with --write, keep the original as <file>.bak")
	rootCmd.Flags().Bool("check", false, "list files that would change and exit non-zero if any")
	rootCmd.Flags().Int("indent", 4, "spaces per indent level")
	rootCmd.Flags().Bool("tab", false, "indent with tabs instead of spaces")
	rootCmd.Flags().String("config", "", "config file (default: .texfmt.toml in the working directory)")
	rootCmd.Flags().BoolP("quiet", "q", false, "suppress per-file status output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var errTag = color.New(color.FgRed).Sprint("error:")

func runFormat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	flags := cmd.Flags()
	write, _ := flags.GetBool("write")
	backup, _ := flags.GetBool("backup")
	check, _ := flags.GetBool("check")
	quiet, _ := flags.GetBool("quiet")
	configPath, _ := flags.GetString("config")

	if write && check {
		return fmt.Errorf("--write cannot be used with --check")
	}
	if backup && !write {
		return fmt.Errorf("--backup requires --write")
	}

	pc, err := loadProjectConfig(configPath)
	if err != nil {
		return err
	}

	// Flags set on the command line win over the config file.
	width := pc.Indent
	tabs := pc.Tabs
	if flags.Changed("indent") {
		width, _ = flags.GetInt("indent")
	}
	if flags.Changed("tab") {
		tabs, _ = flags.GetBool("tab")
	}

	results, err := driver.FormatPaths(cmd.Context(), args, driver.Options{
		Unit:   indent.Unit(width, tabs),
		Write:  write && !check,
		Backup: backup,
	})
	if err != nil {
		return err
	}

	var failed, changes bool
	for _, res := range results {
		if res.Err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", errTag, res.Path, res.Err)
			continue
		}

		switch {
		case check:
			if res.Changed {
				changes = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
		case write:
			if res.Changed && !quiet {
				fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
			}
		default:
			os.Stdout.WriteString(res.Formatted)
		}
	}

	if failed {
		return fmt.Errorf("failed to format some files")
	}
	if check && changes {
		return fmt.Errorf("formatting changes required")
	}
	return nil
}
