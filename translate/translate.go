// Package translate renders user-facing messages in the host language.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	once    sync.Once
	printer *message.Printer
)

// hostPrinter selects a printer from the locales reported by the host.
func hostPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("turing: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage overrides the host locales with an explicit language list.
// An empty list restores host detection.
func SetLanguage(langs ...string) {
	once.Do(func() {})

	if len(langs) == 0 {
		printer = hostPrinter()
		return
	}

	printer = message.NewPrinter(message.MatchLanguage(langs...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	once.Do(func() {
		printer = hostPrinter()
	})

	return printer.Sprintf(key, args...)
}
