package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	testCases := []struct {
		name    string
		workers int
		jobs    int
	}{
		{name: "more jobs than workers", workers: 3, jobs: 20},
		{name: "more workers than jobs", workers: 8, jobs: 2},
		{name: "no jobs", workers: 2, jobs: 0},
		{name: "invalid worker count falls back to one", workers: 0, jobs: 5},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool[int, int](tt.workers, tt.jobs)
			wp.Start(func(job int) int {
				return job * job
			})
			for i := 0; i < tt.jobs; i++ {
				wp.AddJob(i)
			}
			wp.Close()
			wp.Wait()

			got := make([]int, 0, tt.jobs)
			for res := range wp.CollectResults() {
				got = append(got, res)
			}
			sort.Ints(got)

			want := make([]int, 0, tt.jobs)
			for i := 0; i < tt.jobs; i++ {
				want = append(want, i*i)
			}
			assert.Equal(t, want, got)
		})
	}
}
