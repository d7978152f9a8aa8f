package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdInit(ctx context.Context, d Dashboard) tea.Cmd {
	return func() tea.Msg {
		<-d.Init(ctx)
		return initDoneMsg{}
	}
}

func cmdRun(ctx context.Context, d Dashboard) tea.Cmd {
	return func() tea.Msg {
		return runDoneMsg{err: d.Run(ctx)}
	}
}
