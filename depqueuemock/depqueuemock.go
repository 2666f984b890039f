/*
Package depqueuemock provides testify-based mocks of the collaborator
interfaces depqueue.Queue accepts (Comparer, monitor.Logger), following
github.com/lemon-mint/go-datastructures's mock package (mock.Batcher, a
testify/mock wrapper around the batcher.Batcher interface).
*/
package depqueuemock

import (
	"github.com/stretchr/testify/mock"

	"github.com/taskgraph/depqueue"
	"github.com/taskgraph/depqueue/monitor"
)

var _ depqueue.Comparer = (*Comparer)(nil)

// Comparer is a testify mock of depqueue.Comparer.
type Comparer struct {
	mock.Mock
}

// Normalize implements depqueue.Comparer.
func (m *Comparer) Normalize(name string) string {
	args := m.Called(name)
	return args.String(0)
}

var _ monitor.Logger = (*Logger)(nil)

// Logger is a testify mock of monitor.Logger.
type Logger struct {
	mock.Mock
}

// Event implements monitor.Logger.
func (m *Logger) Event(name string, fields map[string]any) {
	m.Called(name, fields)
}
