//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=../mocks/mock_clock.go -package=mocks
package captainslog

import "time"

// Clock supplies the star date.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
