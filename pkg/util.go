package pkg

import (
	"log"
	"os"
)

// InitLog sends the standard logger to a file. The tview client owns the
// terminal, logging to stdout would trash the screen.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
