package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// bannerTTL is how long a hint or status banner stays on screen.
const bannerTTL = 5 * time.Second

// clearBannerMsg asks the model to drop the banner it showed at Seq.
// The sequence number lets a newer banner outlive an older banner's
// expiry timer.
type clearBannerMsg struct {
	Seq int
}

// clearBannerCmd schedules the banner with the given sequence number to
// be cleared after the TTL.
func clearBannerCmd(seq int) tea.Cmd {
	return tea.Tick(bannerTTL, func(time.Time) tea.Msg {
		return clearBannerMsg{Seq: seq}
	})
}
