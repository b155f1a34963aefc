// Package translate formats user visible messages for the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	once    sync.Once
	printer *message.Printer
)

// Printer returns the message printer for the preferred host locale,
// falling back to en-US when the locale cannot be determined.
func Printer() *message.Printer {
	once.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("intcode: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{language.AmericanEnglish.String()}
		}

		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})

	return printer
}

// From formats an en-US Sprintf() style key for the host locale.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
