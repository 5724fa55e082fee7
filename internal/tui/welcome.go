package tui

import "strings"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in", "Create account"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Choose an action:\n\n")
	for i, item := range m.items {
		line := cursor(i == m.idx) + item
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return renderPage("COMPANY DIRECTORY", strings.TrimRight(b.String(), "\n"), "enter: select │ v: version │ q: quit")
}
