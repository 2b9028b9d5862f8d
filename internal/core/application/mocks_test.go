package application_test

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// ports.Metrics
type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) RequestRejected(method string) {
	m.Called(method)
}

func (m *mockMetrics) RequestStarted(method string) {
	m.Called(method)
}

func (m *mockMetrics) RequestFinished(
	method string, success bool, elapsed time.Duration,
) {
	m.Called(method, success, elapsed)
}

// blockingReader blocks every read until unblock is closed.
type blockingReader struct {
	unblock chan struct{}
}

func newBlockingReader() *blockingReader {
	return &blockingReader{make(chan struct{})}
}

func (r *blockingReader) Read(p []byte) (int, error) {
	<-r.unblock
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

type panickingReader struct{}

func (panickingReader) Read([]byte) (int, error) {
	panic("entropy device exploded")
}
