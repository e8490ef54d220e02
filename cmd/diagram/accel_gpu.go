//go:build gpu

package main

// GPU accelerator plus the CPU coverage filler.
import _ "github.com/gogpu/gg/gpu"
