// Copyright 2025 Gustavo C. Viegas. All rights reserved.

// Package f32 wraps the float64 math functions used by the
// algebra packages so call sites stay free of conversions.
package f32

import "math"

func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

func Abs(x float32) float32 { return float32(math.Abs(float64(x))) }

func Floor(x float32) float32 { return float32(math.Floor(float64(x))) }

func Ceil(x float32) float32 { return float32(math.Ceil(float64(x))) }

func Round(x float32) float32 { return float32(math.Round(float64(x))) }

func Mod(x, y float32) float32 { return float32(math.Mod(float64(x), float64(y))) }

func NaN() float32 { return float32(math.NaN()) }

func IsNaN(x float32) bool { return x != x }
