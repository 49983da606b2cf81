// Package cli provides the terminal presentation pieces for Libris.
//
// The package uses [Bubbletea] for the optional interactive account picker
// and [Lipgloss] for styling console output. The picker follows the
// standard Bubbletea Model-View-Update architecture and can be driven in
// tests by sending tea.KeyMsg values to Update.
//
// [Styles] binds lipgloss styles to one writer, so output written to a pipe
// or a buffer carries no escape sequences.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
