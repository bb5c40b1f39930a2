package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"runtime"
	"time"

	"pengine/internal/core"
	"pengine/internal/sim"
)

func main() {
	bursts := flag.Int("bursts", 20, "spawn bursts scattered before ticking")
	ticks := flag.Int("ticks", 600, "ticks to simulate")
	workers := flag.Int("workers", runtime.NumCPU(), "update workers")
	seed := flag.Int64("seed", 42, "deterministic seed")
	intensity := flag.Float64("intensity", 500, "central field intensity")
	verify := flag.Bool("verify", false, "re-run single-threaded and compare results")
	flag.Parse()

	sum, spawned, alive, elapsed := run(*workers, *bursts, *ticks, *seed, *intensity)
	fmt.Printf("workers=%d spawned=%d alive=%d removed=%d\n", *workers, spawned, alive, spawned-alive)
	fmt.Printf("ticks=%d elapsed=%s (%.0f ticks/sec)\n",
		*ticks, elapsed.Round(time.Millisecond), float64(*ticks)/elapsed.Seconds())
	fmt.Printf("checksum=%016x\n", sum)

	if *verify {
		refSum, _, refAlive, _ := run(1, *bursts, *ticks, *seed, *intensity)
		if refSum != sum || refAlive != alive {
			log.Fatalf("mismatch against single-threaded reference: checksum %016x vs %016x, alive %d vs %d",
				sum, refSum, alive, refAlive)
		}
		fmt.Println("verify: pooled pass matches single-threaded reference")
	}
}

func run(workers, bursts, ticks int, seed int64, intensity float64) (sum uint64, spawned, alive int, elapsed time.Duration) {
	cfg := sim.DefaultConfig()
	cfg.Workers = workers
	cfg.Seed = seed
	cfg.FieldIntensity = intensity

	world := sim.NewWithConfig(cfg)
	rng := core.NewRNG(seed)
	for i := 0; i < bursts; i++ {
		origin := core.Vec2{
			X: cfg.Bounds.X + rng.Float64()*cfg.Bounds.W,
			Y: cfg.Bounds.Y + rng.Float64()*cfg.Bounds.H,
		}
		world.SpawnBurst(origin)
	}
	spawned = world.Alive()

	engine := sim.NewEngine(world)
	defer engine.Close()

	start := time.Now()
	for i := 0; i < ticks; i++ {
		engine.Step()
	}
	elapsed = time.Since(start)

	return checksum(world), spawned, world.Alive(), elapsed
}

// checksum folds every live particle position into an order-sensitive hash.
func checksum(w *sim.World) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	for _, b := range w.Batches() {
		for _, p := range b.Positions() {
			write(p.X)
			write(p.Y)
		}
	}
	return h.Sum64()
}
