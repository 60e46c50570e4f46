package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Width(8).Foreground(lipgloss.Color("245"))
	activeLabel   = labelStyle.Foreground(lipgloss.Color("63")).Bold(true)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	favoriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	buttonStyle   = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("63"))
	pulseStyle    = buttonStyle.Background(lipgloss.Color("99"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	frameStyle    = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
)
