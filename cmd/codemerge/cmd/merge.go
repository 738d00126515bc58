package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/codemerge/logging"
	"github.com/viant/codemerge/patcher"
	"github.com/viant/codemerge/repository"
)

func newMergeCommand(v *viper.Viper) *cobra.Command {
	command := &cobra.Command{
		Use:   "merge",
		Short: "Merge patch model into base model",
		Long: `Merge reconciles a patch model document into a base model document.
When base is a folder, documents of both trees are paired by relative path:
pairs are merged, base only documents are kept and patch only documents are added.`,
		Example: `  codemerge merge --base model/app.yaml --patch patch/app.yaml
  codemerge merge --base model --patch patch --out merged --override --exclude 'vendor/**'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, patch := v.GetString("base"), v.GetString("patch")
			if base == "" || patch == "" {
				return fmt.Errorf("both --base and --patch are required")
			}
			config := newConfig(v)
			if err := config.Validate(); err != nil {
				return err
			}
			ctx := cmd.Context()
			store := repository.NewStore(nil)
			srv := patcher.New(store, config, patcher.WithLogger(logging.FromContext(ctx)))
			isDir, err := store.IsDir(ctx, base)
			if err != nil {
				return err
			}
			if !isDir {
				result, err := srv.MergeFile(ctx, base, patch, v.GetString("out"))
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), result)
				return nil
			}
			report, err := srv.MergeTree(ctx, base, patch, v.GetString("out"))
			if err != nil {
				return err
			}
			for _, result := range report.Results {
				printResult(cmd.OutOrStdout(), result)
			}
			totals := report.Totals()
			fmt.Fprintf(cmd.OutOrStdout(), "%d documents, %d written, %d elements appended\n", len(report.Results), report.Written(), totals.Appended())
			return nil
		},
	}
	flags := command.Flags()
	flags.String("base", "", "base model document or folder URL")
	flags.String("patch", "", "patch model document or folder URL")
	flags.String("out", "", "destination URL, base when empty")
	flags.Bool("override", false, "take conflicting content from the patch")
	flags.StringArray("include", nil, "document path patterns to include, comma separated (tree mode)")
	flags.StringArray("exclude", nil, "document path patterns to exclude, comma separated (tree mode)")
	flags.Bool("dry-run", false, "merge without writing")
	cobra.CheckErr(v.BindPFlags(flags))
	return command
}

func newConfig(v *viper.Viper) *patcher.Config {
	config := patcher.DefaultConfig()
	config.Override = v.GetBool("override")
	config.Include = patterns(v.GetStringSlice("include"))
	config.Exclude = patterns(v.GetStringSlice("exclude"))
	config.DryRun = v.GetBool("dry-run")
	return config
}

// patterns splits comma separated values from flags, environment or config file;
// commas inside {alternatives} belong to the pattern
func patterns(values []string) []string {
	var result []string
	for _, value := range values {
		depth, start := 0, 0
		for i, r := range value {
			switch r {
			case '{':
				depth++
			case '}':
				if depth > 0 {
					depth--
				}
			case ',':
				if depth == 0 {
					result = appendPattern(result, value[start:i])
					start = i + 1
				}
			}
		}
		result = appendPattern(result, value[start:])
	}
	return result
}

func appendPattern(result []string, pattern string) []string {
	if pattern = strings.TrimSpace(pattern); pattern != "" {
		result = append(result, pattern)
	}
	return result
}

func printResult(w io.Writer, result *patcher.Result) {
	written := ""
	if result.Written {
		written = " (written)"
	}
	if result.Stats == nil {
		fmt.Fprintf(w, "%-9s %s%s\n", result.Action, result.Path, written)
		return
	}
	fmt.Fprintf(w, "%-9s %s%s +%d\n", result.Action, result.Path, written, result.Stats.Appended())
}
