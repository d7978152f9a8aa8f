package tui

type initDoneMsg struct{}

// runRequestedMsg is sent by the debouncer when the run trigger settles.
type runRequestedMsg struct{}

type runDoneMsg struct {
	err error
}
