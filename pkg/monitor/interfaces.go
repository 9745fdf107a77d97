package monitor

//go:generate mockgen -destination=mock_monitor.go -package=monitor github.com/floraseven/floraseven/pkg/monitor Clock,Ticker

import "time"

// Clock abstracts time-related operations.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker behavior.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}
