// Package session implements the console dialogue of the library.
//
// A [Controller] moves through four states:
//
//	SelectingAccount -> InMenu -> ConfirmingExit -> SelectingAccount | InMenu | Terminated
//
// Invalid input never leaves the current state; it is reported and the
// prompt is shown again. The menu offered in InMenu is the role's command
// set (see model.Role.Commands); commands are accepted by 1-based position
// or by name, ignoring case.
//
// End of input and context cancellation end the dialogue the same way as
// choosing "quit" at the exit confirmation.
package session
