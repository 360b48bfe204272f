package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/kennoath/rustparty/internal/config"
	"github.com/kennoath/rustparty/internal/shot"
	"github.com/kennoath/rustparty/internal/util"
)

func main() {
	var cfgDir, out, weaponID string
	var seed int64
	var n, workers int
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file")
	flag.StringVar(&weaponID, "weapon", "", "weapon id (empty = all)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1000, "shots per weapon")
	flag.IntVar(&workers, "workers", 8, "worker goroutines for batch runs")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("spreadsim: ")

	if err := run(cfgDir, out, weaponID, seed, n, workers); err != nil {
		log.Fatal(err)
	}
}

// run fires every selected weapon and writes either one shot per weapon
// (n <= 1) or a per-weapon summary to out.
func run(cfgDir, out, weaponID string, seed int64, n, workers int) error {
	wc, err := config.LoadAll(cfgDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	defs := wc.Weapons
	if weaponID != "" {
		d, ok := wc.Find(weaponID)
		if !ok {
			return fmt.Errorf("unknown weapon %q", weaponID)
		}
		defs = []config.WeaponDef{d}
	}
	arena := shot.NewArena(wc.Arena)

	if n <= 1 {
		rng := util.New(seed)
		shots := make([]shot.ShotReport, 0, len(defs))
		for _, d := range defs {
			shots = append(shots, shot.Fire(rng, shot.NewWeapon(d), arena).Report())
		}
		if err := writeOut(out, shots); err != nil {
			return err
		}
		log.Printf("single shot per weapon, %d weapons -> %s", len(defs), out)
		return nil
	}

	reports := make([]shot.TallyReport, 0, len(defs))
	for wi, d := range defs {
		t := runBatch(shot.NewWeapon(d), arena, seed+int64(wi), n, workers)
		log.Printf("%s: %d shots, clamped %d, max deviation %.4f rad", d.ID, t.Shots, t.Clamped, t.MaxAbsDeviation)
		reports = append(reports, t.Report(d.ID))
	}
	if err := writeOut(out, reports); err != nil {
		return err
	}
	log.Printf("batch %d x %d done -> %s", len(defs), n, filepath.Base(out))
	return nil
}

// runBatch splits n shots over workers, each with its own seeded source.
// Partial tallies are merged in worker order so a seed reproduces exactly.
func runBatch(w shot.Weapon, arena shot.Arena, seed int64, n, workers int) shot.Tally {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	parts := make([]shot.Tally, workers)
	wg := sync.WaitGroup{}
	for id := 0; id < workers; id++ {
		count := n / workers
		if id < n%workers {
			count++
		}
		wg.Add(1)
		go func(workerID, count int) {
			defer wg.Done()
			rng := util.New(seed + int64(workerID)*7919)
			parts[workerID] = shot.RunVolley(rng, w, arena, count)
		}(id, count)
	}
	wg.Wait()

	var total shot.Tally
	for _, p := range parts {
		total.Merge(p)
	}
	return total
}

func writeOut(path string, v any) error {
	if err := os.WriteFile(path, shot.MarshalPretty(v), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
