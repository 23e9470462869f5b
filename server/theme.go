package server

import (
	"fmt"
	"sync"
)

const (
	themeLight = "light"
	themeDark  = "dark"
)

// themeStore keeps the dashboard theme for the process lifetime.
type themeStore struct {
	mu    sync.RWMutex
	value string
}

func newThemeStore() *themeStore {
	return &themeStore{value: themeLight}
}

func (t *themeStore) Get() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.value
}

func (t *themeStore) Set(theme string) error {
	if theme != themeLight && theme != themeDark {
		return fmt.Errorf("unknown theme %q, expected %q or %q", theme, themeLight, themeDark)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.value = theme
	return nil
}
