// Copyright 2025 go-half Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/x448/float16"

	"github.com/ajroetker/go-half/fp16"
)

// Config controls the sampled checks.
type Config struct {
	Samples   int    // Random float32 patterns on top of the boundary sweep
	Seed      uint64 // Seed for the random patterns
	MaxReport int    // Mismatches recorded per check
}

// Mismatch is one failed comparison.
type Mismatch struct {
	Input string
	Got   string
	Want  string
}

// Result summarizes one check.
type Result struct {
	Name       string
	Checked    int
	Failed     int
	Mismatches []Mismatch
}

// OK reports whether the check found no mismatches.
func (r *Result) OK() bool {
	return r.Failed == 0
}

func (r *Result) record(limit int, m Mismatch) {
	r.Failed++
	if len(r.Mismatches) < limit {
		r.Mismatches = append(r.Mismatches, m)
	}
}

// Check is one named conformance check.
type Check struct {
	Name        string
	Description string
	Run         func(cfg Config, samples []float32) Result
}

// Checks lists every conformance check in the order they run.
var Checks = []Check{
	{Name: "roundtrip", Description: "Encode(Decode(h)) == h for all 65536 patterns", Run: checkRoundTrip},
	{Name: "decode", Description: "Decode agrees with x448/float16 for all 65536 patterns", Run: checkDecode},
	{Name: "encode", Description: "Encode agrees with x448/float16 on sampled float32 values", Run: checkEncode},
	{Name: "widen64", Description: "EncodeFloat64(float64(x)) == Encode(x) on sampled float32 values", Run: checkWiden64},
}

func isNaN16(h uint16) bool {
	return h&0x7C00 == 0x7C00 && h&0x03FF != 0
}

func hex16(h uint16) string { return fmt.Sprintf("0x%04X", h) }

func hex32(f float32) string { return fmt.Sprintf("0x%08X", math.Float32bits(f)) }

func checkRoundTrip(cfg Config, _ []float32) Result {
	res := Result{Name: "roundtrip"}
	for i := 0; i <= math.MaxUint16; i++ {
		h := uint16(i)
		res.Checked++
		if got := fp16.Encode(fp16.Decode(h)); got != h {
			res.record(cfg.MaxReport, Mismatch{Input: hex16(h), Got: hex16(got), Want: hex16(h)})
		}
	}
	return res
}

func checkDecode(cfg Config, _ []float32) Result {
	res := Result{Name: "decode"}
	for i := 0; i <= math.MaxUint16; i++ {
		h := uint16(i)
		res.Checked++
		got := fp16.Decode(h)
		want := float16.Frombits(h).Float32()
		if isNaN16(h) {
			if !math.IsNaN(float64(got)) {
				res.record(cfg.MaxReport, Mismatch{Input: hex16(h), Got: hex32(got), Want: "NaN"})
			}
			continue
		}
		if math.Float32bits(got) != math.Float32bits(want) {
			res.record(cfg.MaxReport, Mismatch{Input: hex16(h), Got: hex32(got), Want: hex32(want)})
		}
	}
	return res
}

func checkEncode(cfg Config, samples []float32) Result {
	res := Result{Name: "encode"}
	for _, f := range samples {
		if math.IsNaN(float64(f)) {
			continue
		}
		res.Checked++
		got := fp16.Encode(f)
		want := float16.Fromfloat32(f).Bits()
		if got != want {
			res.record(cfg.MaxReport, Mismatch{Input: hex32(f), Got: hex16(got), Want: hex16(want)})
		}
	}
	return res
}

func checkWiden64(cfg Config, samples []float32) Result {
	res := Result{Name: "widen64"}
	for _, f := range samples {
		if math.IsNaN(float64(f)) {
			continue
		}
		res.Checked++
		got := fp16.EncodeFloat64(float64(f))
		want := fp16.Encode(f)
		if got != want {
			res.record(cfg.MaxReport, Mismatch{Input: hex32(f), Got: hex16(got), Want: hex16(want)})
		}
	}
	return res
}

// Samples returns the float32 inputs of the sampled checks: every finite
// binary16 value and the midpoint to its successor, each with its float32
// neighbours, for both signs, followed by cfg.Samples random patterns.
func Samples(cfg Config) []float32 {
	var out []float32
	for h := uint16(0); h < fp16.Inf; h++ {
		lo := fp16.Decode(h)
		mid := (lo + fp16.Decode(h+1)) / 2
		for _, v := range []float32{lo, mid} {
			b := math.Float32bits(v)
			for _, nb := range []uint32{b - 1, b, b + 1} {
				if b == 0 && nb == b-1 {
					continue
				}
				f := math.Float32frombits(nb)
				out = append(out, f, -f)
			}
		}
	}

	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15))
	for range cfg.Samples {
		out = append(out, math.Float32frombits(r.Uint32()))
	}
	return out
}

// RunAll runs every check against one shared sample set.
func RunAll(cfg Config) []Result {
	samples := Samples(cfg)
	results := make([]Result, 0, len(Checks))
	for _, c := range Checks {
		results = append(results, c.Run(cfg, samples))
	}
	return results
}
