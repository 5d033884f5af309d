package workerpool

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Job одна единица работы батча.
type Job func(ctx context.Context) error

// Run выполняет задания с ограничением одновременности и возвращает срез
// ошибок той же длины, что и jobs (nil на месте успешных). Ошибка или
// паника одного задания не останавливает остальные: отказ собирается,
// батч доезжает до конца.
func Run(ctx context.Context, limit int, jobs []Job) []error {
	if limit < 1 {
		limit = 1
	}

	errs := make([]error, len(jobs))

	group := new(errgroup.Group)
	group.SetLimit(limit)

	for i, job := range jobs {
		group.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					errs[i] = fmt.Errorf("job panic: %v\n%s", r, stack)
				}
			}()
			errs[i] = job(ctx)
			return nil
		})
	}

	// группа никогда не возвращает ошибку: все отказы лежат в errs
	_ = group.Wait()

	return errs
}
