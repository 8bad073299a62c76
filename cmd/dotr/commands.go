package dotr

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/dotr/internal/version"
	"github.com/arthur-debert/dotr/pkg/cobrax/topics"
	"github.com/arthur-debert/dotr/pkg/commands"
	"github.com/arthur-debert/dotr/pkg/config"
	"github.com/arthur-debert/dotr/pkg/errors"
	"github.com/arthur-debert/dotr/pkg/git"
	"github.com/arthur-debert/dotr/pkg/logging"
	"github.com/arthur-debert/dotr/pkg/sync"
	"github.com/arthur-debert/dotr/pkg/ui"
	"github.com/arthur-debert/dotr/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalFlags holds the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	format     string
	storageDir string
	baseDir    string
}

// app is what a command needs once flags and settings are resolved
type app struct {
	settings *config.Settings
	format   ui.Format
	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "dotr",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLoggerWithOutput(flags.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&flags.storageDir, "storage-dir", "", MsgFlagStorageDir)
	rootCmd.PersistentFlags().StringVar(&flags.baseDir, "base-dir", "", MsgFlagBaseDir)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd(flags))
	rootCmd.AddCommand(newAddCmd(flags))
	rootCmd.AddCommand(newPushCmd(flags))
	rootCmd.AddCommand(newPullCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help, rendered with glamour
	if source, err := fs.Sub(topicFiles, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer("auto"),
		}
		if _, err := topics.Initialize(rootCmd, source, opts); err != nil {
			log.Warn().Err(err).Msg("Failed to load help topics")
		}
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// load resolves settings and the output renderer for cmd
func (f *globalFlags) load(cmd *cobra.Command) (*app, error) {
	overrides := map[string]interface{}{}
	if f.storageDir != "" {
		overrides["storage_dir"] = f.storageDir
	}
	if f.baseDir != "" {
		overrides["base_dir"] = f.baseDir
	}

	settings, err := config.Load(config.LoadOptions{Overrides: overrides})
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(f.format)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("storage", settings.StorageDir).
		Str("base", settings.BaseDir).
		Str("config", settings.ConfigFile).
		Msg("Settings resolved")

	return &app{settings: settings, format: format, renderer: renderer}, nil
}

// runE loads settings before fn runs. With JSON output, errors are also
// written to stdout as {"error", "code"}.
func (f *globalFlags) runE(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := f.load(cmd)
		if err != nil {
			return err
		}
		if err := fn(cmd, args, a); err != nil {
			if a.format == ui.FormatJSON {
				_ = a.renderer.RenderError(err)
			}
			return err
		}
		return nil
	}
}

func (a *app) workspace() commands.WorkspaceOptions {
	return commands.WorkspaceOptions{
		StorageRoot: a.settings.StorageDir,
		BaseDir:     a.settings.BaseDir,
	}
}

func (a *app) git() *git.Client {
	return git.NewClient(a.settings.Git.Binary, a.settings.StorageDir, a.settings.Git.Remote)
}

// dialog asks on the console. The pterm prompt is only used when both ends
// are terminals and output is not JSON.
func (a *app) dialog(cmd *cobra.Command) *confirmations.ConsoleDialog {
	if cmd.InOrStdin() == os.Stdin {
		interactive := a.format != ui.FormatJSON && ui.IsInteractive(os.Stdin) && stdoutIsTerminal()
		return confirmations.NewStdDialog(interactive)
	}
	return confirmations.NewConsoleDialog(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// policy picks how pull treats missing files: flags first, then the
// prompt.assume setting
func (a *app) policy(cmd *cobra.Command, yes, no bool) (sync.MissingFilePolicy, error) {
	if yes && no {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrConflictingAnswers)
	}

	assume := a.settings.Prompt.Assume
	switch {
	case yes:
		assume = config.AssumeYes
	case no:
		assume = config.AssumeNo
	}

	switch assume {
	case config.AssumeYes:
		return sync.AlwaysCreate, nil
	case config.AssumeNo:
		return sync.AlwaysIgnore, nil
	default:
		return a.dialog(cmd), nil
	}
}

// renderGitOutput prefixes every line git printed
func (a *app) renderGitOutput(outputs ...string) error {
	for _, out := range outputs {
		for _, line := range strings.Split(out, "\n") {
			if line == "" {
				continue
			}
			if err := a.renderer.RenderMessage(MsgGitOutputPrefix + line); err != nil {
				return err
			}
		}
	}
	return nil
}

func newInitCmd(flags *globalFlags) *cobra.Command {
	var forceRecreate bool

	cmd := &cobra.Command{
		Use:     "init <git-url>",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: flags.runE(func(cmd *cobra.Command, args []string, a *app) error {
			log.Info().
				Str("storage", a.settings.StorageDir).
				Str("url", args[0]).
				Msg("Initializing storage")

			result, err := commands.Init(cmd.Context(), commands.InitOptions{
				Workspace:     a.workspace(),
				GitURL:        args[0],
				ForceRecreate: forceRecreate,
				Git:           a.git(),
			})
			if err != nil {
				return err
			}

			if err := a.renderGitOutput(result.GitOutput); err != nil {
				return err
			}
			if result.CreatedRegistry {
				return a.renderer.RenderMessage(fmt.Sprintf(MsgInitCreated, result.StorageRoot))
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgInitExisting, result.StorageRoot, result.TrackedFiles))
		}),
	}

	cmd.Flags().BoolVar(&forceRecreate, "force-recreate", false, MsgFlagForceRecreate)

	return cmd
}

func newAddCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "add <path>...",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: flags.runE(func(cmd *cobra.Command, args []string, a *app) error {
			result, err := commands.Add(commands.AddOptions{
				Workspace: a.workspace(),
				Paths:     args,
			})
			if result != nil {
				for _, file := range result.Added {
					if rerr := a.renderer.RenderMessage(fmt.Sprintf(MsgAddedFile, file.Path)); rerr != nil {
						return rerr
					}
				}
			}
			return err
		}),
	}
}

func newPushCmd(flags *globalFlags) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:     "push",
		Short:   MsgPushShort,
		Long:    MsgPushLong,
		Example: MsgPushExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: flags.runE(func(cmd *cobra.Command, args []string, a *app) error {
			commitMessage := message
			if commitMessage == "" {
				commitMessage = a.settings.Git.CommitMessage
			}

			result, err := commands.Push(cmd.Context(), commands.PushOptions{
				Workspace:     a.workspace(),
				Git:           a.git(),
				Asker:         a.dialog(cmd),
				CommitMessage: commitMessage,
			})
			if result != nil && result.Report != nil {
				if rerr := a.renderer.RenderReport(result.Report); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return err
			}

			if !result.Committed {
				return a.renderer.RenderMessage(MsgNoChanges)
			}
			return a.renderGitOutput(result.GitOutput...)
		}),
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", MsgFlagMessage)

	return cmd
}

func newPullCmd(flags *globalFlags) *cobra.Command {
	var yes, no bool

	cmd := &cobra.Command{
		Use:     "pull",
		Short:   MsgPullShort,
		Long:    MsgPullLong,
		Example: MsgPullExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: flags.runE(func(cmd *cobra.Command, args []string, a *app) error {
			policy, err := a.policy(cmd, yes, no)
			if err != nil {
				return err
			}

			result, err := commands.Pull(cmd.Context(), commands.PullOptions{
				Workspace: a.workspace(),
				Git:       a.git(),
				Policy:    policy,
			})
			if result != nil {
				if rerr := a.renderGitOutput(result.GitOutput); rerr != nil {
					return rerr
				}
				if result.Report != nil {
					if rerr := a.renderer.RenderReport(result.Report); rerr != nil {
						return rerr
					}
				}
			}
			return err
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVarP(&no, "no", "n", false, MsgFlagNo)

	return cmd
}

func newStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: flags.runE(func(cmd *cobra.Command, args []string, a *app) error {
			result, err := commands.Status(commands.StatusOptions{Workspace: a.workspace()})
			if err != nil {
				return err
			}
			return a.renderer.RenderStatus(result.Files)
		}),
	}
}

func newListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: flags.runE(func(cmd *cobra.Command, args []string, a *app) error {
			result, err := commands.List(commands.ListOptions{Workspace: a.workspace()})
			if err != nil {
				return err
			}
			return a.renderer.RenderList(result.Files)
		}),
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
