package errors

// Error message constants for the jio application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToParseFile = "failed to parse file"
	ErrMsgFailedToWriteFile = "failed to write file"

	// Directory processing errors
	ErrMsgFailedToCheckPath   = "failed to check path"
	ErrMsgFailedToFindJSFiles = "failed to find JavaScript files in directory"
	ErrMsgProblemsFound       = "%d problems found"

	// Configuration errors
	ErrMsgFailedToLoadConfig  = "failed to load config"
	ErrMsgFailedToParseConfig = "failed to parse config"

	// Watch mode errors
	ErrMsgFailedToCreateWatcher = "failed to create watcher"
	ErrMsgFailedToWatchPath     = "failed to watch path"

	// Info/warning messages
	WarnMsgProcessingDirWithoutFix = "Warning: Processing directory without --fix flag. No files will be modified."
	InfoMsgUseFixFlag              = "Use --fix to rewrite files in place."
	InfoMsgNoJSFilesFound          = "No JavaScript files found in directory: %s"
	InfoMsgFoundJSFiles            = "Found %d JavaScript files in directory: %s"
	InfoMsgProcessedFiles          = "Fixed: %s"
	InfoMsgErrorProcessing         = "Error processing %s: %v"
	InfoMsgWatching                = "Watching %s for changes..."
)
