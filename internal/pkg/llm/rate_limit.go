package llm

import "golang.org/x/sync/semaphore"

const defaultConcurrency = 4

func newLimiter(n int64) *semaphore.Weighted {
	if n <= 0 {
		n = defaultConcurrency
	}
	return semaphore.NewWeighted(n)
}
