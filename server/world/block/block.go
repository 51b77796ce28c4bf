// Package block holds the material palette used by the terrain synthesis
// engine. Blocks are registered once at package initialisation and referenced
// by runtime ID in chunk storage, mirroring the way the wider server resolves
// block states to runtime IDs after the registry is finalised.
package block

// Block is a single registered material. The zero Block is not valid; all
// Blocks must be obtained from the package-level variables or ByRuntimeID.
type Block struct {
	name string
	rid  uint32
}

// Name returns the stable string identifier of the block, such as "sand" or
// "soul_soil". Names never change across versions.
func (b Block) Name() string {
	return b.name
}

// String implements fmt.Stringer.
func (b Block) String() string {
	return b.name
}

var (
	blocks []Block
	byName = map[string]Block{}
)

func register(name string) Block {
	if _, ok := byName[name]; ok {
		panic("block: duplicate registration of " + name)
	}
	b := Block{name: name, rid: uint32(len(blocks))}
	blocks = append(blocks, b)
	byName[name] = b
	return b
}

// Air must be registered first so that the zero value of chunk storage reads
// back as air.
var (
	Air              = register("air")
	Bedrock          = register("bedrock")
	Stone            = register("stone")
	Deepslate        = register("deepslate")
	Dirt             = register("dirt")
	Grass            = register("grass_block")
	Podzol           = register("podzol")
	Mycelium         = register("mycelium")
	Sand             = register("sand")
	RedSand          = register("red_sand")
	Sandstone        = register("sandstone")
	Gravel           = register("gravel")
	Clay             = register("clay")
	Mud              = register("mud")
	MangroveRoots    = register("mangrove_roots")
	MossBlock        = register("moss_block")
	MossyCobblestone = register("mossy_cobblestone")
	Snow             = register("snow")
	Ice              = register("ice")
	PackedIce        = register("packed_ice")
	Water            = register("water")
	Lava             = register("lava")
	DripstoneBlock   = register("dripstone_block")
	PointedDripstone = register("pointed_dripstone")
	Sculk            = register("sculk")
	Netherrack       = register("netherrack")
	SoulSand         = register("soul_sand")
	SoulSoil         = register("soul_soil")
	Basalt           = register("basalt")
	Blackstone       = register("blackstone")
	Magma            = register("magma")
	CrimsonNylium    = register("crimson_nylium")
	WarpedNylium     = register("warped_nylium")
	NetherWartBlock  = register("nether_wart_block")
	WarpedWartBlock  = register("warped_wart_block")
	EndStone         = register("end_stone")
	OakLog           = register("oak_log")
	OakLeaves        = register("oak_leaves")
	BirchLog         = register("birch_log")
	BirchLeaves      = register("birch_leaves")
	JungleLog        = register("jungle_log")
	JungleLeaves     = register("jungle_leaves")
	MangroveLog      = register("mangrove_log")
	MangroveLeaves   = register("mangrove_leaves")
	CrimsonStem      = register("crimson_stem")
	WarpedStem       = register("warped_stem")
	Shroomlight      = register("shroomlight")
	Bamboo           = register("bamboo")
	ShortGrass       = register("short_grass")
	Fern             = register("fern")
	Poppy            = register("poppy")
	Dandelion        = register("dandelion")
	BlueOrchid       = register("blue_orchid")
	DeadBush         = register("dead_bush")
	Seagrass         = register("seagrass")
	Melon            = register("melon")
	Vines            = register("vines")
	Cactus           = register("cactus")
	CrimsonFungus    = register("crimson_fungus")
	WarpedFungus     = register("warped_fungus")
	CrimsonRoots     = register("crimson_roots")
	WarpedRoots      = register("warped_roots")
	CoalOre          = register("coal_ore")
	CopperOre        = register("copper_ore")
	IronOre          = register("iron_ore")
	GoldOre          = register("gold_ore")
	LapisOre         = register("lapis_ore")
	DiamondOre       = register("diamond_ore")
)

// RuntimeID returns the runtime ID of a registered block. Runtime IDs are
// assigned in registration order and are stable for the lifetime of the
// process.
func RuntimeID(b Block) uint32 {
	return b.rid
}

// ByRuntimeID looks up a block by its runtime ID. The second return value is
// false if no block with that ID was registered.
func ByRuntimeID(rid uint32) (Block, bool) {
	if int(rid) >= len(blocks) {
		return Block{}, false
	}
	return blocks[rid], true
}

// ByName looks up a block by its stable name.
func ByName(name string) (Block, bool) {
	b, ok := byName[name]
	return b, ok
}

// Count returns the number of registered blocks.
func Count() int {
	return len(blocks)
}
