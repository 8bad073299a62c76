package dotr

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep dotfiles in sync through a git repository"
	MsgInitShort       = "Clone the storage repository"
	MsgAddShort        = "Start tracking files"
	MsgPushShort       = "Copy local changes to storage and push them"
	MsgPullShort       = "Pull the storage and update local files"
	MsgStatusShort     = "Show the sync status of tracked files"
	MsgListShort       = "List tracked files"
	MsgListLong        = "List displays every tracked file with the short hash of its last pushed content."
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgInitCreated     = "Initialized %s with an empty registry"
	MsgInitExisting    = "Initialized %s, %d file(s) tracked"
	MsgAddedFile       = "Tracking %s"
	MsgNoChanges       = "No changes to commit"
	MsgGitOutputPrefix = "git: "

	// Version output
	MsgVersionFormat = "dotr version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Error messages
	MsgErrConflictingAnswers = "--yes and --no cannot be used together"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat        = "Output format (auto, term, text, json)"
	MsgFlagStorageDir    = "Storage directory (default $XDG_DATA_HOME/dotr)"
	MsgFlagBaseDir       = "Base directory tracked paths are relative to (default $HOME)"
	MsgFlagForceRecreate = "Remove an existing storage directory first"
	MsgFlagMessage       = "Commit message"
	MsgFlagYes           = "Create every missing file without asking"
	MsgFlagNo            = "Ignore every missing file without asking"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/push-long.txt
	msgPushLongRaw string
	MsgPushLong    = strings.TrimSpace(msgPushLongRaw)

	//go:embed msgs/push-example.txt
	msgPushExampleRaw string
	MsgPushExample    = strings.TrimRight(msgPushExampleRaw, "\n")

	//go:embed msgs/pull-long.txt
	msgPullLongRaw string
	MsgPullLong    = strings.TrimSpace(msgPullLongRaw)

	//go:embed msgs/pull-example.txt
	msgPullExampleRaw string
	MsgPullExample    = strings.TrimRight(msgPullExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
