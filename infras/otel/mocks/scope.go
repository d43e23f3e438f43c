package mocks

import "frontdesk/infras/otel"

// Scope discards everything; tests that need to look at a span use their own recorder.
type Scope struct{}

func (Scope) AddEvent(_ string) {}

func (Scope) End() {}

func (Scope) SetAttribute(_ string, _ any) {}

func (Scope) SetAttributes(_ map[string]any) {}

func (Scope) TraceError(_ error) {}

func (Scope) TraceIfError(_ error) {}

func NewScope() otel.Scope {
	return Scope{}
}
