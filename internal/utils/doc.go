// Package utils provides shared helpers for the shifr commands.
//
// # Terminal Utilities
//
//   - IsTerminalWriter, IsTerminalReader: detect interactive streams
//
// # I/O Utilities
//
//   - ReadInput: reads piped text, refusing an interactive terminal
//   - TrimNewline: drops one trailing line ending
//
// # File Utilities
//
//   - ResolveFiles: expands paths and doublestar globs to a sorted file list
//   - FormatPaths: formats file paths for human-readable output
package utils
