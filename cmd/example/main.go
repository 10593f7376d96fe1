// Command example is the data-sharing harness: two threads communicate
// through a shared heap array and a shared package variable while the
// initial thread polls for the result.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"uthread"
)

// dataSegVar lives in the data segment; every thread must observe the
// same instance.
var dataSegVar = 1

func main() {
	quantum := flag.Duration("quantum", uthread.DefaultQuantum, "Scheduling interval.")
	flag.Parse()

	rt := uthread.New(uthread.Config{
		Quantum: *quantum,
		Logger:  uthread.NewLineLogger(os.Stdout),
	})
	defer rt.Shutdown()

	arr := make([]int, 2)

	waiter := func(arg any) any {
		a := arg.([]int)
		for a[0] == 0 {
			rt.Sleep(time.Second)
		}
		if dataSegVar != 2 {
			fmt.Println("FAILED")
			os.Exit(1)
		}
		fmt.Printf("hello world %d time\n", dataSegVar)
		a[1] = 2
		rt.Exit(nil)
		return nil
	}
	writer := func(arg any) any {
		a := arg.([]int)
		fmt.Println("hello world")
		dataSegVar++
		a[0] = 1
		a[1] = 1
		rt.Exit(nil)
		return nil
	}

	pid1, err := rt.Create(waiter, arr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pid2, err := rt.Create(writer, arr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if pid1 == pid2 {
		fmt.Println("FAILED")
		os.Exit(1)
	}

	for counter := 0; arr[1] != 2; counter++ {
		if counter >= 10 {
			fmt.Println("FAILED")
			os.Exit(1)
		}
		rt.Sleep(time.Second)
	}
	fmt.Println("PASS")
}
