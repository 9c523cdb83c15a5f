package picker

import "github.com/stringmanolo/mail/internal/styles"

var appStyle = styles.AppStyle

func (m Model) View() string {
	if m.chosen != nil || m.cancelled {
		return ""
	}
	return appStyle.Render(m.list.View())
}
