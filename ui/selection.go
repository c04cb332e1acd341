package ui

// Selection tracks the keyboard-highlighted entry of a button column.
type Selection struct {
	labels  []string
	actions []func()
	index   int
}

func NewSelection(labels []string, actions []func()) Selection {
	return Selection{labels: labels, actions: actions}
}

func (s *Selection) Len() int {
	return len(s.labels)
}

func (s *Selection) Index() int {
	return s.index
}

// Move steps the highlight by delta, wrapping at both ends.
func (s *Selection) Move(delta int) {
	n := len(s.labels)
	if n == 0 {
		return
	}
	s.index = ((s.index+delta)%n + n) % n
}

func (s *Selection) Select(i int) {
	if i < 0 || i >= len(s.labels) {
		return
	}
	s.index = i
}

func (s *Selection) SetLabel(i int, label string) {
	if i < 0 || i >= len(s.labels) {
		return
	}
	s.labels[i] = label
}

// Display returns the label of entry i as drawn, with a marker on the
// highlighted entry.
func (s *Selection) Display(i int) string {
	if i < 0 || i >= len(s.labels) {
		return ""
	}
	if i == s.index {
		return "> " + s.labels[i] + " <"
	}
	return s.labels[i]
}

// Activate runs the highlighted entry's action, if any.
func (s *Selection) Activate() {
	if s.index >= len(s.actions) {
		return
	}
	if fn := s.actions[s.index]; fn != nil {
		fn()
	}
}
