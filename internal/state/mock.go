package state

import "fmt"

// Mock is a test double for Manager.
type Mock struct {
	theme   string
	saves   int
	saveErr error
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetTheme() (string, error) {
	if m.theme == "" {
		return ThemeDark, nil
	}
	return m.theme, nil
}

func (m *Mock) SaveTheme(theme string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if !validTheme(theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	m.theme = theme
	m.saves++
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetTheme(theme string) { m.theme = theme }

func (m *Mock) SetSaveError(err error) { m.saveErr = err }

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
