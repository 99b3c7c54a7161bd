package ui

import "github.com/charmbracelet/lipgloss"

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
	frameDraggingStyle = frameStyle.BorderForeground(lipgloss.Color("205"))

	avatarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("62"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFDF5"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)

	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	selfBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	otherBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("237")).
				Padding(0, 1)
	senderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	buttonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	buttonActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	popoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1)
	popoverTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)
