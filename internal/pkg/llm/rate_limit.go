package llm

import (
	"golang.org/x/sync/semaphore"
)

var (
	RewriteWeight = int64(5)
	RewriteSem    = semaphore.NewWeighted(RewriteWeight)
)
