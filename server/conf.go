package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/biome"
	"github.com/df-mc/terravolt/server/world/gendb"
	"github.com/df-mc/terravolt/server/world/generator/climgen"
	"github.com/pelletier/go-toml"
)

// Config contains options for assembling a terrain engine.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Seed is the world seed all terrain derives from. A value of 0 is valid
	// and results in a fixed world layout.
	Seed int64
	// Registry is the biome registry the engine selects from. If nil, a
	// registry seeded with the default biome set is created. The registry is
	// frozen by Config.New after the disabled-biome and default overrides
	// below have been applied.
	Registry *biome.Registry
	// DisabledBiomes lists biome IDs to remove from the registry before it is
	// frozen. Unknown IDs are logged and skipped.
	DisabledBiomes []string
	// DefaultBiome and DefaultNetherBiome override the fallback biomes used
	// when no biome matches a climate sample. If empty, the registry keeps
	// the defaults assigned during registration.
	DefaultBiome, DefaultNetherBiome string
	// DisableNether and DisableEnd skip construction of the generator for the
	// respective dimension. Requests for a disabled dimension fail.
	DisableNether, DisableEnd bool
	// GeneratorWorkers controls the number of asynchronous workers dedicated
	// to generating chunks per dimension. If set to 0 or lower, the worker
	// count is derived from the host's available CPUs.
	GeneratorWorkers int
	// GeneratorQueueSize limits how many chunk generation jobs may wait for a
	// worker. If set to 0 or lower, a queue size proportional to the worker
	// count is chosen automatically.
	GeneratorQueueSize int
	// Store is the chunk snapshot store consulted before generating and
	// written to afterwards. If nil, every chunk is generated on demand.
	Store *gendb.DB
	// Placer handles feature placement during generation. If nil, the
	// built-in chunk placer is used.
	Placer climgen.Placer
	// StructureSink receives the structure descriptors emitted per generated
	// chunk, to be consumed by an external structure generator. May be nil.
	StructureSink func(dim world.Dimension, pos world.ChunkPos, structures []biome.Structure)
}

// UserConfig is the user configuration of a terrain engine. It holds the
// settings that are meaningfully serialisable and may be converted to a
// Config by calling UserConfig.Config().
type UserConfig struct {
	World struct {
		// Seed controls the procedural generation of all dimensions.
		Seed int64
		// SaveData controls whether generated chunks are persisted. If true,
		// the engine caches chunk snapshots in a LevelDB store under Folder
		// and serves repeat requests from it.
		SaveData bool
		// Folder is the folder the chunk snapshot store resides in.
		Folder string
		// DisabledBiomes lists biome IDs excluded from generation.
		DisabledBiomes []string
		// DefaultBiome overrides the fallback biome used when no biome
		// matches a column's climate. Leave empty to keep the first
		// registered overworld biome.
		DefaultBiome string
		// DefaultNetherBiome overrides the fallback for nether selection.
		DefaultNetherBiome string
		// DisableNether disables the Nether dimension entirely.
		DisableNether bool
		// DisableEnd disables the End dimension entirely.
		DisableEnd bool
	}
	Generator struct {
		// Workers is the number of background workers dedicated to generating
		// chunks. Set to 0 to automatically select a reasonable default based
		// on the host's CPU count.
		Workers int
		// QueueSize determines how many chunk generation jobs can wait for a
		// worker. Set to 0 to use an automatically chosen size.
		QueueSize int
	}
}

// Config converts a UserConfig to a Config, so that it may be used to create
// an Engine. An error is returned if the chunk snapshot store could not be
// opened.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	conf := Config{
		Log:                log,
		Seed:               uc.World.Seed,
		DisabledBiomes:     uc.World.DisabledBiomes,
		DefaultBiome:       uc.World.DefaultBiome,
		DefaultNetherBiome: uc.World.DefaultNetherBiome,
		DisableNether:      uc.World.DisableNether,
		DisableEnd:         uc.World.DisableEnd,
		GeneratorWorkers:   uc.Generator.Workers,
		GeneratorQueueSize: uc.Generator.QueueSize,
	}
	if uc.World.SaveData {
		store, err := gendb.Config{Log: log}.Open(uc.World.Folder)
		if err != nil {
			return conf, fmt.Errorf("create chunk store: %w", err)
		}
		conf.Store = store
	}
	return conf, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.Seed = 0
	c.World.SaveData = true
	c.World.Folder = "world"
	c.World.DisableNether = false
	c.World.DisableEnd = false
	return c
}

// ReadConfig reads a UserConfig from the TOML file at the path passed. If the
// file does not exist, it is created holding the default configuration, which
// is then returned.
func ReadConfig(path string) (UserConfig, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("read config: %w", err)
		}
		encoded, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, encoded, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// ParseDimension resolves a dimension by one of its accepted names. The empty
// string resolves to the overworld.
func ParseDimension(name string) (world.Dimension, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "overworld", "world", "default":
		return world.Overworld, true
	case "nether", "hell":
		return world.Nether, true
	case "end", "the_end", "end_dimension":
		return world.End, true
	}
	return nil, false
}
