// Command batches creates workers in timed waves, exercising creation
// while earlier threads are already being scheduled.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"uthread"
)

const (
	totalThreads = 128
	batchSize    = 16
	numBatches   = totalThreads / batchSize
)

var (
	completedCount = 0
	batchCompleted [numBatches]int
)

func threadFunc(rt *uthread.Runtime) uthread.Func {
	return func(arg any) any {
		threadNum := arg.(int)
		batchNum := threadNum / batchSize

		sum := 0
		for i := 0; i < 10000; i++ {
			sum += i
			if i%1000 == 0 {
				rt.Yield()
			}
		}

		completedCount++
		batchCompleted[batchNum]++
		fmt.Printf("Thread %d (batch %d) completed (sum=%d, batch_count=%d, total=%d)\n",
			threadNum, batchNum, sum, batchCompleted[batchNum], completedCount)
		return threadNum
	}
}

func main() {
	quantum := flag.Duration("quantum", uthread.DefaultQuantum, "Scheduling interval.")
	gap := flag.Duration("gap", 10*time.Millisecond, "Delay between batches.")
	flag.Parse()

	rt := uthread.New(uthread.Config{
		Quantum: *quantum,
		Logger:  uthread.NewLineLogger(os.Stdout),
	})

	fmt.Printf("Creating %d threads in %d batches of %d...\n",
		totalThreads, numBatches, batchSize)

	fn := threadFunc(rt)
	for batch := 0; batch < numBatches; batch++ {
		fmt.Printf("\n=== Creating batch %d (threads %d-%d) ===\n",
			batch, batch*batchSize, (batch+1)*batchSize-1)

		for i := 0; i < batchSize; i++ {
			idx := batch*batchSize + i
			if _, err := rt.Create(fn, idx); err != nil {
				fmt.Printf("ERROR: Failed to create thread %d: %v\n", idx, err)
				os.Exit(1)
			}
		}

		fmt.Printf("Batch %d created successfully. Waiting briefly...\n", batch)
		rt.Sleep(*gap)
	}

	fmt.Printf("\n=== All %d threads created ===\n", totalThreads)

	fmt.Println("\nBatch completion status:")
	for i := 0; i < numBatches; i++ {
		fmt.Printf("  Batch %d: %d/%d threads completed\n", i, batchCompleted[i], batchSize)
	}
	fmt.Printf("Total: %d/%d threads completed\n", completedCount, totalThreads)

	// Remaining workers finish after the initial thread exits; the runtime
	// ends the process when the last one does.
	rt.Exit(nil)
}
