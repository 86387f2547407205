// Package dvec provides segmented demand vectors for travel demand models,
// with segmentation algebra, zone translation and parallel tabular ingestion.
//
// A Vector holds one value row per segment of a segmentation, each row
// spanning the zones of a zoning system (or a single scalar for zoneless
// vectors). Vectors are immutable: every operator derives a new vector and
// every vector always carries a value for every segment its segmentation
// defines.
//
// # Quick Start
//
// Basic usage with static oracles:
//
//	import (
//	    "github.com/tdmkit/dvec"
//	    "github.com/tdmkit/dvec/segment"
//	    "github.com/tdmkit/dvec/zoning"
//	)
//
//	zones, _ := zoning.NewStatic("lad", []string{"E06000001", "E06000002"})
//	seg, _ := segment.NewStatic("p_m", []segment.Dimension{
//	    {Name: "p", Values: []string{"1", "2"}},
//	    {Name: "m", Values: []string{"car", "bus"}},
//	})
//
//	demand, err := dvec.FromRows(zones, seg, rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	future, err := demand.Multiply(growthRates)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Features
//
//   - Complete vectors: every segment always has a value, missing input is
//     infilled at construction and unknown keys are hard errors
//   - Segmentation algebra: multiply, expand, aggregate, split and subset
//     across segmentations, with the combination rules answered by oracles
//   - Zone translation: weighted redistribution between zone systems
//   - Mass guarantees: aggregation preserves totals exactly, expansion is
//     checked against a configurable tolerance
//   - Time handling: average-week, average-day and average-hour formats with
//     exact conversions, weekday and weekend aware balancing
//   - Parallel execution: ingestion, combination and translation chunk their
//     work across a configurable worker pool
//
// # Architecture
//
// The engine never invents combination rules. Each Vector carries a
// types.Segmentation and a types.Zoning; operators ask them how segments
// combine, aggregate, split or translate and only execute the arithmetic:
//
//	FromRows → Multiply/Expand/Aggregate/... → Save/ToRows/Reports
//
// The segment and zoning packages provide table-driven oracle
// implementations; anything answering the interfaces in types works.
//
// # Advanced Usage
//
// Operators observe the engine configuration and report through the
// configured logger and metrics collector:
//
//	cfg := dvec.DefaultConfig()
//	cfg.ProcessCount = 8
//
//	demand, err := dvec.FromRows(zones, seg, rows,
//	    dvec.WithConfig(cfg),
//	    dvec.WithLogger(logger),
//	    dvec.WithMetrics(collector),
//	)
//
// Vectors persist to a compressed binary format and load back through a
// Registry that resolves the oracle names:
//
//	path, err := demand.Save("outputs/hb_productions")
//	...
//	reg := dvec.NewRegistry()
//	reg.RegisterZoning(zones)
//	reg.RegisterSegmentation(seg)
//	demand, err = dvec.Load(path, reg)
//
// See the examples/ directory for complete working examples.
package dvec
