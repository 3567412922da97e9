package models

import "math"

func round1(v float64) float64 { return math.Round(v*10) / 10 }
