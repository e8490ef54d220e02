//go:build !gpu

package main

// CPU tile rasterization for complex paths.
import _ "github.com/gogpu/gg/raster"
