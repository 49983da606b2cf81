package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/libris/internal/model"
)

// ErrPickerClosed is returned when the picker is left without choosing an account.
var ErrPickerClosed = errors.New("account picker closed")

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

type accountItem struct {
	account model.Account
}

func (i accountItem) FilterValue() string { return i.account.DisplayName }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(accountItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.account.DisplayName)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

// AccountPickerModel lets the user choose an account with the arrow keys
// and Enter, or by pressing the account's number.
type AccountPickerModel struct {
	list     list.Model
	accounts []model.Account
	chosen   *model.Account
	quitting bool
}

func NewAccountPicker(accounts []model.Account) AccountPickerModel {
	items := make([]list.Item, len(accounts))
	for i, a := range accounts {
		items[i] = accountItem{account: a}
	}

	const defaultWidth = 40

	l := list.New(items, itemDelegate{}, defaultWidth, len(items)+10)
	l.Title = "Select an account"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return AccountPickerModel{list: l, accounts: accounts}
}

func (m AccountPickerModel) Init() tea.Cmd {
	return nil
}

func (m AccountPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)

		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(accountItem); ok {
				a := i.account
				m.chosen = &a
			}

			return m, tea.Quit

		default:
			if a, ok := model.FindAccount(m.accounts, keypress); ok && len(keypress) == 1 {
				m.chosen = &a

				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m AccountPickerModel) View() string {
	// the session prints the farewell
	if m.chosen != nil || m.quitting {
		return ""
	}

	return "\n" + m.list.View()
}

// Chosen returns the selected account, if any.
func (m AccountPickerModel) Chosen() (model.Account, bool) {
	if m.chosen == nil {
		return model.Account{}, false
	}

	return *m.chosen, true
}

// Picker runs AccountPickerModel as a full bubbletea program.
type Picker struct {
	Accounts []model.Account
	Options  []tea.ProgramOption
}

// Pick blocks until an account is chosen. It returns ErrPickerClosed when
// the user quits the picker.
func (p Picker) Pick(ctx context.Context) (model.Account, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.Options...)

	final, err := tea.NewProgram(NewAccountPicker(p.Accounts), opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.Account{}, ctxErr
		}

		return model.Account{}, err
	}

	if a, ok := final.(AccountPickerModel).Chosen(); ok {
		return a, nil
	}

	return model.Account{}, ErrPickerClosed
}
