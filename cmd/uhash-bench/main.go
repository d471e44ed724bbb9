package main

import (
	"encoding/binary"
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/universalhash/uhash"
	"github.com/universalhash/uhash/types"
	"github.com/universalhash/uhash/utils"
)

type summary struct {
	Iterations     uint64           `json:"iterations"`
	Workers        int              `json:"workers"`
	Sequential     bool             `json:"sequential"`
	ElapsedMs      float64          `json:"elapsed_ms"`
	Hashrate       float64          `json:"hashrate"`
	BestDigest     types.Hash       `json:"best_digest"`
	BestZeroBits   uint32           `json:"best_zero_bits"`
	BestDifficulty types.Difficulty `json:"best_difficulty"`
	Caps           uhash.Caps       `json:"caps"`
}

func main() {
	iterations := flag.Uint64("iterations", 100, "total number of hashes to run")
	workers := flag.Int("workers", 1, "concurrent hashers, <= 0 selects from NumCPU")
	sequential := flag.Bool("sequential", false, "run chains sequentially inside each hasher")
	cpuProfile := flag.String("cpuprofile", "", "write cpu profile to this file")
	memProfile := flag.String("memprofile", "", "write heap profile to this file")
	jsonOutput := flag.Bool("json", false, "print the summary as JSON")
	debug := flag.Bool("debug", false, "enable debug log output")
	flag.Parse()

	if *debug {
		utils.GlobalLogLevel |= utils.LogLevelDebug
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			utils.Fatalf("could not create cpu profile: %s", err)
		}
		defer f.Close()
		if err = pprof.StartCPUProfile(f); err != nil {
			utils.Fatalf("could not start cpu profile: %s", err)
		}
		defer pprof.StopCPUProfile()
	}

	caps := uhash.Capabilities()
	utils.Logf("bench", "capabilities: aes=%t avx2=%t avx512=%t",
		caps.AES, caps.AVX2, caps.AVX512)

	routines := *workers
	if routines <= 0 {
		routines = runtime.NumCPU()
	}
	utils.Logf("bench", "running %d hashes across %d workers, sequential=%t", *iterations, routines, *sequential)

	hashers := make([]*uhash.Hasher, routines)
	bestDigests := make([]types.Hash, routines)
	bestBits := make([]uint32, routines)

	// mining-shaped input, 60-byte header plus the trailing nonce
	var header [60]byte
	for i := range header {
		header[i] = byte(i)
	}

	start := time.Now()

	err := utils.SplitWork(routines, *iterations, func(workIndex uint64, routineIndex int) error {
		var input [68]byte
		copy(input[:], header[:])
		binary.LittleEndian.PutUint64(input[60:], workIndex)

		digest, err := hashers[routineIndex].Hash(input[:])
		if err != nil {
			return err
		}

		if zeroBits := uhash.LeadingZeroBits(digest); zeroBits > bestBits[routineIndex] ||
			(bestDigests[routineIndex] == types.ZeroHash && bestBits[routineIndex] == 0) {
			bestBits[routineIndex] = zeroBits
			bestDigests[routineIndex] = digest
		}
		return nil
	}, func(routines, routineIndex int) error {
		if *sequential {
			hashers[routineIndex] = uhash.NewSequentialHasher()
		} else {
			hashers[routineIndex] = uhash.NewHasher()
		}
		return nil
	})
	if err != nil {
		utils.Fatalf("bench failed: %s", err)
	}

	elapsed := time.Since(start)

	best := 0
	for i := range bestBits {
		if bestBits[i] > bestBits[best] {
			best = i
		}
	}

	var rate float64
	if elapsed > 0 {
		rate = float64(*iterations) / elapsed.Seconds()
	}

	utils.Logf("bench", "%d hashes in %s, %sH/s", *iterations, elapsed, utils.SiUnits(rate, 2))
	utils.Logf("bench", "best digest %s (%d leading zero bits, difficulty %s)",
		bestDigests[best], bestBits[best], types.DifficultyFromPoW(bestDigests[best]))

	if *jsonOutput {
		buf, err := utils.MarshalJSONIndent(summary{
			Iterations:     *iterations,
			Workers:        routines,
			Sequential:     *sequential,
			ElapsedMs:      float64(elapsed.Microseconds()) / 1000,
			Hashrate:       rate,
			BestDigest:     bestDigests[best],
			BestZeroBits:   bestBits[best],
			BestDifficulty: types.DifficultyFromPoW(bestDigests[best]),
			Caps:           caps,
		}, "  ")
		if err != nil {
			utils.Fatalf("could not marshal summary: %s", err)
		}
		_, _ = os.Stdout.Write(append(buf, '\n'))
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			utils.Fatalf("could not create heap profile: %s", err)
		}
		defer f.Close()
		runtime.GC()
		if err = pprof.WriteHeapProfile(f); err != nil {
			utils.Fatalf("could not write heap profile: %s", err)
		}
	}
}
