package ntconfig

import (
	"crypto/sha256"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config specifies all enumeration and postprocessing run parameters.
type Config struct {
	// Catalogue is the set of read-only input files (§6).
	Catalogue CatalogueCfg `yaml:"catalogue" json:"catalogue"`

	// Partition controls how the search space is split and run (§4.4, §5).
	Partition PartitionCfg `yaml:"partition" json:"partition"`

	// Store controls the columnar writer (§4.6).
	Store StoreCfg `yaml:"store" json:"store"`

	// OutputDir is where run-indexed enumeration files and final JSON
	// exports are written.
	OutputDir string `yaml:"outputDir" json:"outputDir"`
}

// CatalogueCfg names the two read-only input files.
type CatalogueCfg struct {
	// TilePath is the path to the tile catalogue JSON array (§6).
	TilePath string `yaml:"tilePath" json:"tilePath"`

	// CardPath is the path to the card catalogue JSON array (§6).
	CardPath string `yaml:"cardPath" json:"cardPath"`
}

// PartitionCfg controls the work partitioner and worker pool.
type PartitionCfg struct {
	// SeedPiece is the fixed piece index used to carve the first-level
	// tasks (§4.4: "any fixed piece index yields a correct partition").
	SeedPiece int `yaml:"seedPiece" json:"seedPiece"`

	// TwoPieceSeed enables the second seeded placement for finer task
	// granularity (§4.4 "Under a two-piece seed strategy").
	TwoPieceSeed bool `yaml:"twoPieceSeed" json:"twoPieceSeed"`

	// Workers is the worker pool size. Zero means one worker per hardware
	// thread (§5 "Scheduling model").
	Workers int `yaml:"workers" json:"workers"`
}

// StoreCfg controls the columnar writer's chunking.
type StoreCfg struct {
	// ChunkRows is the number of rows buffered before a chunk is flushed
	// (§4.6: "~10^5 rows/chunk").
	ChunkRows int `yaml:"chunkRows" json:"chunkRows"`
}

const defaultChunkRows = 100_000

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice, useful
// for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Partition.Workers == 0 {
		c.Partition.Workers = runtime.NumCPU()
	}
	if c.Store.ChunkRows == 0 {
		c.Store.ChunkRows = defaultChunkRows
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
}

// Validate checks all configuration constraints. Returns an error
// describing the first validation failure, or nil if valid.
func (c *Config) Validate() error {
	if c.Catalogue.TilePath == "" {
		return fmt.Errorf("catalogue.tilePath must not be empty")
	}
	if c.Catalogue.CardPath == "" {
		return fmt.Errorf("catalogue.cardPath must not be empty")
	}
	if c.Partition.SeedPiece < 0 {
		return fmt.Errorf("partition.seedPiece must be non-negative, got %d", c.Partition.SeedPiece)
	}
	if c.Partition.Workers < 1 {
		return fmt.Errorf("partition.workers must be at least 1, got %d", c.Partition.Workers)
	}
	if c.Store.ChunkRows < 1 {
		return fmt.Errorf("store.chunkRows must be at least 1, got %d", c.Store.ChunkRows)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic hash of the configuration. ntenum stamps it
// into a merged run's sidecar metadata (ntstore.WriteRunMetadata) and ntrank
// compares it against that metadata to detect a stale merge before ranking.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.Sum256([]byte(c.OutputDir))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}
