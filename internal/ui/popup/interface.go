package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal drawn over the homepage body: the guestbook delete
// confirmation (ui/confirm) and the key help (ui/helpbindings). While one is
// open it receives every key; the app frames it with RenderBordered and
// composites it over the panels.
type Popup interface {
	// Init returns the command to run when the popup opens.
	Init() tea.Cmd

	// Update handles a key or message while the popup is open.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the content only; the border and centering are added by
	// the caller.
	View() string

	// SetSize gives the popup the space inside the border.
	SetSize(width, height int)
}
