// Command allatonce spawns the whole thread table's worth of workers in
// one burst and lets them drain after the initial thread exits.
package main

import (
	"flag"
	"fmt"
	"os"

	"uthread"
)

const numThreads = 128

// completedCount is shared by every worker; single-processor scheduling
// makes the unguarded increment safe.
var completedCount = 0

func threadFunc(rt *uthread.Runtime) uthread.Func {
	return func(arg any) any {
		threadNum := arg.(int)

		sum := 0
		for i := 0; i < 1000; i++ {
			sum += i
		}

		completedCount++
		fmt.Printf("Thread %d completed (sum=%d, total_completed=%d)\n",
			threadNum, sum, completedCount)
		return threadNum
	}
}

func main() {
	quantum := flag.Duration("quantum", uthread.DefaultQuantum, "Scheduling interval.")
	flag.Parse()

	rt := uthread.New(uthread.Config{
		Quantum: *quantum,
		Logger:  uthread.NewLineLogger(os.Stdout),
	})

	fmt.Printf("Creating %d threads all at once...\n", numThreads)

	fn := threadFunc(rt)
	for i := 0; i < numThreads; i++ {
		if _, err := rt.Create(fn, i); err != nil {
			fmt.Printf("ERROR: Failed to create thread %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	fmt.Printf("All %d threads created successfully!\n", numThreads)
	fmt.Println("Main thread exiting; workers drain before the process ends.")

	// The runtime ends the process once the last worker exits.
	rt.Exit(nil)
}
