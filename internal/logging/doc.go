// Package logger provides leveled, coloured logging for shifr commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Messages carry a coloured prefix from fatih/color.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows debug messages (key source, config path, resolved files)
//
// Warnings and errors are always shown.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Always shown, on stderr
//	Logger.Errorf()         // Always shown, on stderr
//	Logger.ErrorfAndReturn() // Returns the message as an error, logging it with --debug
//
// # Usage
//
// Commands create a logger in their PersistentPreRun from the flag values and
// the command's output streams:
//
//	Logger = logger.Logger{Verbose: verbose, Debug: debug, Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
//	Logger.Infof("Encrypting %d characters", n)
//
// A zero Logger writes to os.Stdout and os.Stderr.
package logger
