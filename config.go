package dvec

import "fmt"

// Config holds the engine tunables attached to every vector.
//
// A vector receives its Config at construction and passes it on to every
// vector it derives, so a pipeline configures the engine once. There is no
// package-level mutable state.
type Config struct {
	// ProcessCount controls operator parallelism.
	//
	// 0 runs every operator serially in the caller. A positive value runs a
	// worker pool of that size. A negative value uses all available cores
	// minus that many, so -2 on a 16-core machine runs 14 workers.
	ProcessCount int `yaml:"processCount"`

	// RowChunkSize is the tabular ingestion chunk size in rows.
	//
	// Ingestion converts this many rows per parallel task. Inputs too small
	// to fill every worker at this size divide evenly across workers instead.
	RowChunkSize int `yaml:"rowChunkSize" validate:"gte=0"`

	// ToRowsMinChunkSize is the minimum segment count per task when
	// converting a vector back to rows.
	ToRowsMinChunkSize int `yaml:"toRowsMinChunkSize" validate:"gte=0"`

	// TranslateMinChunkSize is the minimum segment count per task during
	// zone translation.
	TranslateMinChunkSize int `yaml:"translateMinChunkSize" validate:"gte=0"`

	// MassRelTol is the relative tolerance for mass-preservation checks,
	// measured against the larger of the two totals.
	MassRelTol float64 `yaml:"massRelTol" validate:"gte=0"`

	// MassAbsTol is the absolute tolerance for mass-preservation checks.
	MassAbsTol float64 `yaml:"massAbsTol" validate:"gte=0"`

	// BalanceInfill replaces non-positive segment sums when balancing, so
	// scale ratios never divide by zero.
	BalanceInfill float64 `yaml:"balanceInfill" validate:"gte=0"`
}

// DefaultConfig returns a Config with production defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		ProcessCount:          -2,
		RowChunkSize:          100000,
		ToRowsMinChunkSize:    400,
		TranslateMinChunkSize: 700,
		MassRelTol:            1e-4,
		MassAbsTol:            0,
		BalanceInfill:         1e-10,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.RowChunkSize == 0 {
		cfg.RowChunkSize = defaults.RowChunkSize
	}
	if cfg.ToRowsMinChunkSize == 0 {
		cfg.ToRowsMinChunkSize = defaults.ToRowsMinChunkSize
	}
	if cfg.TranslateMinChunkSize == 0 {
		cfg.TranslateMinChunkSize = defaults.TranslateMinChunkSize
	}
	if cfg.MassRelTol == 0 {
		cfg.MassRelTol = defaults.MassRelTol
	}
	if cfg.BalanceInfill == 0 {
		cfg.BalanceInfill = defaults.BalanceInfill
	}
	// Note: ProcessCount of 0 is valid (serial execution) and MassAbsTol of 0
	// is valid (relative check only), so no defaults are applied to either.
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Rules:
//   - RowChunkSize >= 1
//   - ToRowsMinChunkSize >= 1
//   - TranslateMinChunkSize >= 1
//   - MassRelTol and MassAbsTol >= 0
//   - BalanceInfill > 0
//
// Returns:
//   - error: ErrInvalidConfig describing the violated rule, nil if valid
func (cfg *Config) Validate() error {
	if cfg.RowChunkSize < 1 {
		return fmt.Errorf("%w: RowChunkSize must be >= 1, got %d", ErrInvalidConfig, cfg.RowChunkSize)
	}
	if cfg.ToRowsMinChunkSize < 1 {
		return fmt.Errorf("%w: ToRowsMinChunkSize must be >= 1, got %d", ErrInvalidConfig, cfg.ToRowsMinChunkSize)
	}
	if cfg.TranslateMinChunkSize < 1 {
		return fmt.Errorf("%w: TranslateMinChunkSize must be >= 1, got %d", ErrInvalidConfig, cfg.TranslateMinChunkSize)
	}
	if cfg.MassRelTol < 0 {
		return fmt.Errorf("%w: MassRelTol must be >= 0, got %g", ErrInvalidConfig, cfg.MassRelTol)
	}
	if cfg.MassAbsTol < 0 {
		return fmt.Errorf("%w: MassAbsTol must be >= 0, got %g", ErrInvalidConfig, cfg.MassAbsTol)
	}
	if cfg.BalanceInfill <= 0 {
		return fmt.Errorf("%w: BalanceInfill must be > 0, got %g", ErrInvalidConfig, cfg.BalanceInfill)
	}

	return nil
}
