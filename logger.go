package trlevel

import (
	"io"
	"log"
)

var logger *log.Logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger sets where decoding progress is logged. Nothing is logged by
// default.
func SetLogger(l *log.Logger) {
	logger = l
}
