package pq_test

import (
	"fmt"

	"github.com/jawline/pq"
)

// ExampleQueue_minimizeHead demonstrates a queue that yields the smallest
// priority first.
func ExampleQueue_minimizeHead() {
	q := pq.New[string, int](8, pq.MinimizeHead)

	q.Insert("write report", 5)
	q.Insert("fix outage", 1)
	q.Insert("review PR", 3)

	for q.Len() > 0 {
		item, _ := q.Take()
		fmt.Println(item)
	}

	// Output:
	// fix outage
	// review PR
	// write report
}

// ExampleQueue_maximizeHead demonstrates a queue that yields the largest
// priority first.
func ExampleQueue_maximizeHead() {
	q := pq.New[string, int](8, pq.MaximizeHead)

	q.Insert("bronze", 10)
	q.Insert("gold", 30)
	q.Insert("silver", 20)

	for q.Len() > 0 {
		item, _ := q.Take()
		fmt.Println(item)
	}

	// Output:
	// gold
	// silver
	// bronze
}

// ExampleQueue_customItem demonstrates carrying an arbitrary item type and
// handling the empty-queue result.
func ExampleQueue_customItem() {
	type Job struct {
		Name string
	}

	q := pq.New[Job, float64](0, pq.MinimizeHead)

	q.Insert(Job{Name: "compact"}, 2.5)
	q.Insert(Job{Name: "flush"}, 0.5)

	for {
		job, ok := q.Take()
		if !ok {
			fmt.Println("queue drained")
			break
		}
		fmt.Printf("running %s\n", job.Name)
	}

	// Output:
	// running flush
	// running compact
	// queue drained
}
