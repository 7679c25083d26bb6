package filewise

// Short messages (one-liners)
const (
	MsgRootShort = "File discovery and bulk file operations"
	MsgRootLong = `filewise finds files by extension, glob fragment or exact name,
lists the directories that contain them, enumerates the distinct
extensions or directories under a path, and performs bulk move,
copy, remove and rename operations driven by the same match modes.`

	MsgFilesShort = "Find files matching patterns under a path"
	MsgFilesLong = `Find files under a search path whose names match the given patterns.

The match mode controls how patterns are applied:
  ext         match by file extension (case-insensitive, dot optional)
  glob_left   names ending with the pattern
  glob_right  names starting with the pattern
  glob_both   pattern anywhere in the name
  ww          exact base-name match`
	MsgFilesExample = `  filewise files ~/data txt csv             # by extension
  filewise files ~/data -m glob_both report  # 'report' anywhere in name
  filewise files ~/data -m ww Makefile --top-only`

	MsgDirsShort = "Find directories containing matching files"
	MsgDirsLong = `Find the directories that contain at least one file matching the
given patterns. Each qualifying directory is listed once.`

	MsgItemsShort = "List distinct extensions or directories under a path"
	MsgItemsLong = `List either the distinct file extensions present under a path or
the distinct directory paths, depending on --task.`
	MsgItemsExample = `  filewise items ~/data                      # distinct extensions
  filewise items ~/data --skip-ext log,tmp
  filewise items ~/data --task directories`

	MsgMoveShort    = "Move matching files between directories"
	MsgCopyShort    = "Copy matching files between directories"
	MsgRemoveShort  = "Remove matching files from directories"
	MsgMkdirShort   = "Create directories, parents included"
	MsgRmdirShort   = "Remove directories and their contents"
	MsgMoveDirShort = "Move directories pairwise"
	MsgCopyDirShort = "Copy directories pairwise, recursively"
	MsgRenameShort  = "Rename files or directories pairwise"
	MsgCatShort     = "Print file contents"

	MsgGenConfigShort = "Print the default configuration as TOML"
	MsgGenConfigLong  = "Output the default configuration to stdout, ready to be saved as .filewise.toml."

	MsgDocsShort    = "Show the filewise guide"
	MsgVersionShort = "Print version information"
	MsgManShort     = "Generate man page"
)

// Error messages
const (
	MsgErrRenamePairs = "rename expects an even number of arguments (old new pairs)"
	MsgErrNoSource    = "at least one --from directory is required"
	MsgErrNoDest      = "at least one --to directory is required"
)
