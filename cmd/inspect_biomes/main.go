// Command inspect_biomes prints the biome table of a configured engine and
// resolves the biome governing a world position, optionally rendering a small
// map of biome initials around it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/df-mc/terravolt/server"
	"github.com/df-mc/terravolt/server/world"
)

func main() {
	var (
		confPath = flag.String("config", "config.toml", "path to the engine configuration file")
		dimName  = flag.String("dim", "overworld", "dimension to inspect: overworld, nether or end")
		x        = flag.Int64("x", 0, "world X coordinate to resolve")
		z        = flag.Int64("z", 0, "world Z coordinate to resolve")
		radius   = flag.Int64("radius", 0, "radius in blocks of the biome map printed around (x, z); 0 disables the map")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, *confPath, *dimName, *x, *z, *radius); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(log *slog.Logger, confPath, dimName string, x, z, radius int64) error {
	dim, ok := server.ParseDimension(dimName)
	if !ok {
		return fmt.Errorf("unknown dimension %q", dimName)
	}
	uc, err := server.ReadConfig(confPath)
	if err != nil {
		return err
	}
	// Inspection never writes chunks; keep the store untouched.
	uc.World.SaveData = false

	conf, err := uc.Config(log)
	if err != nil {
		return err
	}
	engine, err := conf.New()
	if err != nil {
		return err
	}
	defer engine.Close()

	printTable(engine)

	b, err := engine.BiomeAt(dim, x, z)
	if err != nil {
		return err
	}
	fmt.Printf("\nbiome at (%d, %d) in the %v: %v (%v)\n", x, z, dim, b.DisplayName(), b.ID())

	if radius > 0 {
		printMap(engine, dim, x, z, radius)
	}
	return nil
}

func printTable(engine *server.Engine) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOLOUR\tBOUNDED\tNETHER\tEND")
	for _, b := range engine.Registry().All() {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\t%v\n",
			b.ID(), b.DisplayName(), b.Colour(), b.Profile().Bounded, b.NetherBiome(), b.EndBiome())
	}
	w.Flush()
}

// printMap renders the area around (x, z) with one character per 8 blocks,
// using the first letter of each biome ID.
func printMap(engine *server.Engine, dim world.Dimension, x, z, radius int64) {
	const step = 8
	fmt.Println()
	for mz := z - radius; mz <= z+radius; mz += step {
		line := make([]byte, 0, 2*(2*radius/step+1))
		for mx := x - radius; mx <= x+radius; mx += step {
			b, err := engine.BiomeAt(dim, mx, mz)
			if err != nil {
				return
			}
			ch := b.ID()[0]
			if mx == x && mz == z {
				ch = '@'
			}
			line = append(line, ch, ' ')
		}
		fmt.Println(string(line))
	}
}
