package demo

import (
	"fmt"
	"io"
)

// Sink receives the component's console output. The printed lines are the
// observable contract of this component, so they bypass structured logging.
type Sink interface {
	Printf(format string, args ...any)
}

// WriterSink adapts an io.Writer into a Sink.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Printf(format string, args ...any) {
	fmt.Fprintf(s.W, format, args...)
}

// Service is the demonstration component: a public operation that delegates
// to a private helper holding the single branch in the system.
type Service struct {
	out Sink
}

func NewService(out Sink) *Service {
	return &Service{out: out}
}

// DoSomething announces the message and reports whether the helper
// accepted it.
func (s *Service) DoSomething(message string) bool {
	s.out.Printf("Doing something with message: %s\n", message)
	return s.helperFunction(message)
}

func (s *Service) helperFunction(info string) bool {
	if info == "" {
		s.out.Printf("Helper function received empty info.\n")
		return false
	}
	s.out.Printf("Helper function called with info: %s\n", info)
	return true
}
