package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"pkg.jsn.cam/walksim/internal/encode"
	"pkg.jsn.cam/walksim/internal/progress"
	"pkg.jsn.cam/walksim/pkg/walk"
)

/*generates a batch of 2D random walks, one JSON object per line*/

var (
	TotalWalks = flag.Int("walks", 5, "Number of walks to generate")
	StepCount  = flag.Int("steps", 1000, "Number of steps per walk")
	MaxStep    = flag.Int("max-step", 3, "Maximum step magnitude")
	OutputPath = flag.String("output", "var/walks.jsonl", "Output JSONL file path")
	Seed       = flag.Uint64("seed", 0, "Random seed (0 picks one and logs it)")
	Quiet      = flag.Bool("quiet", false, "Disable the progress bar")
)

func main() {
	flag.Parse()

	producer, err := walk.NewProducer(*TotalWalks, *StepCount, *MaxStep)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	seed := *Seed
	if seed == 0 {
		seed = rand.Uint64()
		log.Printf("Using seed: %d", seed)
	}
	producer.Generator().Init(rand.New(rand.NewPCG(seed, seed)))

	if !*Quiet {
		producer.OnProgress(progress.Bar(os.Stderr))
	}

	// open file for writing
	if err := os.MkdirAll(filepath.Dir(*OutputPath), 0755); err != nil {
		panic(err)
	}
	file, err := os.Create(*OutputPath)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	session := uuid.New().String()
	buf := bufio.NewWriter(file)
	out := encode.NewWriter(buf)

	// generate walks
	count := 0
	for w := range producer.Walks() {
		if err := out.Write(encode.NewRecord(session, count, w)); err != nil {
			log.Fatalf("Failed to write walk: %v", err)
		}
		count++
	}

	if err := buf.Flush(); err != nil {
		log.Fatalf("Failed to flush output: %v", err)
	}

	fmt.Printf("Batch complete!\n")
	fmt.Printf("  Session: %s\n", session)
	fmt.Printf("  Walks:   %s\n", humanize.Comma(int64(count)))
	fmt.Printf("  Steps:   %s per walk\n", humanize.Comma(int64(*StepCount)))
	fmt.Printf("  Output:  %s\n", *OutputPath)
}
