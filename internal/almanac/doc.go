// Package almanac reads and writes the input documents that describe a
// remapping pipeline and its seeds.
//
// Two encodings are supported. The text format is the puzzle layout:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//	...
//
// Each mapping line is "dest source length". The YAML format carries the
// same data for hand-written pipelines:
//
//	version: "1"
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - name: seed-to-soil
//	    mappings:
//	      - {dest: 50, source: 98, length: 2}
//	      - {dest: 52, source: 50, length: 48}
//
// Documents are validated as a whole (every overlap in every stage is
// reported) before Pipeline builds the immutable pipeline.
package almanac
