package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blobvec/blob"
)

// Element kinds of varying size, to exercise different layouts.
type small struct {
	A, B int64
}

type medium struct {
	Pos [4]float64
	Tag uint32
}

type large struct {
	Payload [256]byte
	Seq     uint64
}

type named struct {
	Name string
	Age  int
}

const kindCount = 4

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	elements := flag.Int("elements", 100000, "The initial number of elements to push per kind.")
	initialCap := flag.Int("capacity", 1024, "The initial capacity of each store.")
	flag.Parse()

	log.Println("Starting blob store stress test...")

	registry, err := blob.NewRegistry(*initialCap)
	if err != nil {
		log.Fatalf("Failed to create registry: %v", err)
	}
	defer registry.Release()

	log.Printf("Populating %d kinds with %d elements each...\n", kindCount, *elements)
	for i := 0; i < *elements; i++ {
		blob.Push(blob.StoreFor[small](registry), small{A: int64(i), B: int64(i * 2)})
		blob.Push(blob.StoreFor[medium](registry), medium{Tag: uint32(i)})
		blob.Push(blob.StoreFor[large](registry), large{Seq: uint64(i)})
		blob.Push(blob.StoreFor[named](registry), named{Name: fmt.Sprintf("e%d", i), Age: i})
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:   *duration,
		Elements:   *elements,
		Kinds:      kindCount,
		InitialCap: *initialCap,
		ChurnTime:  Stats{Samples: make([]time.Duration, 0)},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running churn for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalPasses int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			passStart := time.Now()
			churnPass(registry)
			report.ChurnTime.Samples = append(report.ChurnTime.Samples, time.Since(passStart))
			totalPasses++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalPasses = totalPasses
	report.ChurnTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// churnPass swap-removes and re-pushes a batch of elements in every store,
// then sweeps each store once through its cell iterator.
func churnPass(registry *blob.Registry) {
	churnKind(registry, func(v small) small { v.A++; return v })
	churnKind(registry, func(v medium) medium { v.Pos[0]++; return v })
	churnKind(registry, func(v large) large { v.Seq++; return v })
	churnKind(registry, func(v named) named { v.Age++; return v })
}

func churnKind[T any](registry *blob.Registry, mutate func(T) T) {
	store := blob.StoreFor[T](registry)

	const batch = 64
	for i := 0; i < batch && store.Len() > 0; i++ {
		v, ok := blob.SwapRemove[T](store, rand.Intn(store.Len()))
		if ok {
			blob.Push(store, v)
		}
	}

	for cell := range blob.Cells[T](store) {
		cell.Set(mutate(cell.Get()))
	}
}
