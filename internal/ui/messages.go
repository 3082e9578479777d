package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

type frameMsg time.Time

func frameInterval(fps int) time.Duration {
	return time.Duration(harmonica.FPS(fps) * float64(time.Second))
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
