package tui

type confirmModel struct {
	companyName string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.companyName + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
