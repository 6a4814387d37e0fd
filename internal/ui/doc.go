// Package ui provides semantic text formatting for shifr output.
//
// Formatters are chosen by what the text is, not by how it should look:
//
//	ui.Key.Sprint("КЛЮЧ")          // Cipher keys
//	ui.OpenText.Sprint("ПРИВЕТ")   // Plain (open) text
//	ui.CipherText.Sprint("СРЗДЕС") // Cipher text
//	ui.Command.Sprint("shifr route shell")
//	ui.Path.Sprint("notes/letter.txt")
//	ui.Success.Sprint("✓")
//	ui.Error.Sprint("✗")
//	ui.Info.Sprint("→")
//	ui.Muted.Sprint("3 columns")
//
// Colors are disabled when the NO_COLOR environment variable is set or when
// fatih/color decides the terminal cannot show them. Without colors, keys are
// wrapped in [brackets], commands in `backticks` and muted text in
// (parentheses) so they still stand out; the texts themselves are printed
// bare, since a cipher text must be copyable as is.
package ui
