package filewise

import (
	"os"

	"github.com/arthur-debert/filewise/pkg/config"
	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/arthur-debert/filewise/pkg/finder"
	"github.com/arthur-debert/filewise/pkg/ops"
	"github.com/arthur-debert/filewise/pkg/utils"
	"github.com/spf13/cobra"
)

// queryFlags holds the flags shared by the find commands
type queryFlags struct {
	matchType  string
	topOnly    bool
	excludes   []string
	ignoreCase bool
}

func (q *queryFlags) register(cmd *cobra.Command, app *appContext) {
	cmd.Flags().StringVarP(&q.matchType, "match", "m", finder.MatchExtension.String(),
		"Match mode: ext, glob_left, glob_right, glob_both or ww")
	cmd.Flags().BoolVar(&q.topOnly, "top-only", false,
		"Search only the immediate children of the path, no recursion")
	cmd.Flags().StringArrayVarP(&q.excludes, "exclude", "e", nil,
		"Drop candidates whose path contains this substring (repeatable, comma-separated)")
	cmd.Flags().BoolVar(&q.ignoreCase, "ignore-case", app.cfg.IgnoreCase,
		"Case-insensitive glob and whole-word matching")
}

func (q *queryFlags) build(app *appContext, patterns []string) (finder.Query, error) {
	mt, err := finder.ParseMatchType(q.matchType)
	if err != nil {
		return finder.Query{}, err
	}
	excludes := utils.SplitList(q.excludes)
	excludes = append(excludes, app.cfg.ExcludeDirs...)
	return finder.Query{
		Patterns:    utils.SplitList(patterns),
		MatchType:   mt,
		TopOnly:     q.topOnly,
		ExcludeDirs: excludes,
		IgnoreCase:  q.ignoreCase,
	}, nil
}

func newFilesCmd(app *appContext) *cobra.Command {
	var flags queryFlags
	cmd := &cobra.Command{
		Use:     "files <path> <pattern>...",
		Short:   MsgFilesShort,
		Long:    MsgFilesLong,
		Example: MsgFilesExample,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.build(app, args[1:])
			if err != nil {
				return err
			}
			results, err := finder.New().FindFiles(args[0], q)
			if err != nil {
				return err
			}
			return renderResults(cmd.OutOrStdout(), *app.output, results)
		},
	}
	flags.register(cmd, app)
	return cmd
}

func newDirsCmd(app *appContext) *cobra.Command {
	var flags queryFlags
	cmd := &cobra.Command{
		Use:   "dirs <path> <pattern>...",
		Short: MsgDirsShort,
		Long:  MsgDirsLong,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.build(app, args[1:])
			if err != nil {
				return err
			}
			results, err := finder.New().FindDirsWithFiles(args[0], q)
			if err != nil {
				return err
			}
			return renderResults(cmd.OutOrStdout(), *app.output, results)
		},
	}
	flags.register(cmd, app)
	return cmd
}

func newItemsCmd(app *appContext) *cobra.Command {
	var task string
	var topOnly bool
	var skipExt []string
	var excludes []string

	cmd := &cobra.Command{
		Use:     "items <path>",
		Short:   MsgItemsShort,
		Long:    MsgItemsLong,
		Example: MsgItemsExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := finder.ParseTask(task)
			if err != nil {
				return err
			}
			skip := utils.SplitList(skipExt)
			skip = append(skip, app.cfg.SkipExtensions...)
			exc := utils.SplitList(excludes)
			exc = append(exc, app.cfg.ExcludeDirs...)

			results, err := finder.New().FindItems(args[0], finder.ItemsQuery{
				Task:        t,
				SkipExt:     skip,
				TopOnly:     topOnly,
				ExcludeDirs: exc,
			})
			if err != nil {
				return err
			}
			return renderResults(cmd.OutOrStdout(), *app.output, results)
		},
	}

	cmd.Flags().StringVar(&task, "task", finder.TaskExtensions.String(),
		"What to list: extensions or directories")
	cmd.Flags().BoolVar(&topOnly, "top-only", false,
		"Search only the immediate children of the path, no recursion")
	cmd.Flags().StringArrayVar(&skipExt, "skip-ext", nil,
		"Extensions to omit from the listing (repeatable, comma-separated)")
	cmd.Flags().StringArrayVarP(&excludes, "exclude", "e", nil,
		"Drop candidates whose path contains this substring")
	return cmd
}

// transferFlags holds the flags shared by move, copy and remove
type transferFlags struct {
	matchType string
	from      []string
	to        []string
}

func (f *transferFlags) register(cmd *cobra.Command, withDest bool) {
	cmd.Flags().StringVarP(&f.matchType, "match", "m", finder.MatchExtension.String(),
		"Match mode: ext, glob_left, glob_right, glob_both or ww")
	cmd.Flags().StringArrayVar(&f.from, "from", nil, "Source directory (repeatable)")
	if withDest {
		cmd.Flags().StringArrayVar(&f.to, "to", nil, "Destination directory (repeatable)")
	}
}

func (f *transferFlags) validate(withDest bool) (finder.MatchType, error) {
	mt, err := finder.ParseMatchType(f.matchType)
	if err != nil {
		return 0, err
	}
	if len(f.from) == 0 {
		return 0, errors.New(errors.ErrInvalidInput, MsgErrNoSource)
	}
	if withDest && len(f.to) == 0 {
		return 0, errors.New(errors.ErrInvalidInput, MsgErrNoDest)
	}
	return mt, nil
}

func newMoveCmd(app *appContext) *cobra.Command {
	var flags transferFlags
	cmd := &cobra.Command{
		Use:   "move <pattern>... --from <dir> --to <dir>",
		Short: MsgMoveShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mt, err := flags.validate(true)
			if err != nil {
				return err
			}
			return ops.New().MoveFiles(utils.SplitList(args), flags.from, flags.to, mt)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func newCopyCmd(app *appContext) *cobra.Command {
	var flags transferFlags
	cmd := &cobra.Command{
		Use:   "copy <pattern>... --from <dir> --to <dir>",
		Short: MsgCopyShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mt, err := flags.validate(true)
			if err != nil {
				return err
			}
			return ops.New().CopyFiles(utils.SplitList(args), flags.from, flags.to, mt)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func newRemoveCmd(app *appContext) *cobra.Command {
	var flags transferFlags
	cmd := &cobra.Command{
		Use:   "remove <pattern>... --from <dir>",
		Short: MsgRemoveShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mt, err := flags.validate(false)
			if err != nil {
				return err
			}
			return ops.New().RemoveFiles(utils.SplitList(args), flags.from, mt)
		},
	}
	flags.register(cmd, false)
	return cmd
}

func newMkdirCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <dir>...",
		Short: MsgMkdirShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ops.New().MakeDirectories(args...)
		},
	}
}

func newRmdirCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rmdir <dir>...",
		Short: MsgRmdirShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ops.New().RemoveDirectories(args...)
		},
	}
}

func newMoveDirCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move-dir <src> <dst> [<src> <dst>...]",
		Short: MsgMoveDirShort,
		Args:  evenPairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := splitPairs(args)
			return ops.New().MoveDirectories(src, dst)
		},
	}
}

func newCopyDirCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "copy-dir <src> <dst> [<src> <dst>...]",
		Short: MsgCopyDirShort,
		Args:  evenPairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := splitPairs(args)
			return ops.New().CopyDirectories(src, dst)
		},
	}
}

func newRenameCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new> [<old> <new>...]",
		Short: MsgRenameShort,
		Args:  evenPairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			old, renamed := splitPairs(args)
			return ops.New().Rename(old, renamed)
		},
	}
}

func newCatCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>...",
		Short: MsgCatShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := ops.New()
			for _, path := range args {
				if err := o.Cat(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.DefaultTOML()
			if err != nil {
				return err
			}
			if write {
				return os.WriteFile(".filewise.toml", []byte(content), 0644)
			}
			cmd.Print(content)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to ./.filewise.toml instead of stdout")
	return cmd
}

// evenPairArgs validates that arguments come in old/new pairs
func evenPairArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 || len(args)%2 != 0 {
		return errors.New(errors.ErrInvalidInput, MsgErrRenamePairs)
	}
	return nil
}

// splitPairs turns [a1 b1 a2 b2] into ([a1 a2], [b1 b2])
func splitPairs(args []string) ([]string, []string) {
	first := make([]string, 0, len(args)/2)
	second := make([]string, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		first = append(first, args[i])
		second = append(second, args[i+1])
	}
	return first, second
}
