package services

import (
	"math"

	"marnthara/order"
)

// WallpaperPrice is the price breakdown of a wallpaper job.
type WallpaperPrice struct {
	Total      float64 `json:"total"`
	Material   float64 `json:"material"`
	Install    float64 `json:"install"`
	Rolls      int     `json:"rolls"`
	Sqm        float64 `json:"sqm"`
	TotalWidth float64 `json:"total_width"`
}

// CalcWallpaperRolls returns the rolls needed to cover width meters of wall
// at the given height. Taller walls get fewer strips out of each roll.
func CalcWallpaperRolls(width, height float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	stripsNeeded := math.Ceil(width / WallpaperRollW)

	var stripsPerRoll float64
	switch {
	case height <= 2.5:
		stripsPerRoll = 3
	case height <= 3.3:
		stripsPerRoll = 2
	default:
		stripsPerRoll = 1
	}
	return int(math.Ceil(stripsNeeded / stripsPerRoll))
}

// TotalWallWidth sums the measured wall segments.
func TotalWallWidth(spec *order.WallpaperSpec) float64 {
	if spec == nil {
		return 0
	}
	var sum float64
	for _, w := range spec.Widths {
		sum += float64(w)
	}
	return sum
}

// installCostPerRoll honors an explicit zero; unset means the default rate.
func installCostPerRoll(v order.OptFloat) float64 {
	if !v.Valid || v.Value < 0 {
		return DefaultInstallPR
	}
	return v.Value
}

// CalcWallpaperPrice prices a wallpaper item over all of its wall segments.
func CalcWallpaperPrice(it *order.Item) WallpaperPrice {
	if it == nil || it.IsSuspended {
		return WallpaperPrice{}
	}
	spec := it.Wallpaper()
	totalWidth := TotalWallWidth(spec)
	height := float64(it.HeightM)
	if totalWidth <= 0 || height <= 0 {
		return WallpaperPrice{}
	}

	rolls := CalcWallpaperRolls(totalWidth, height)
	material := float64(rolls) * float64(spec.PricePerRoll)
	install := float64(rolls) * installCostPerRoll(spec.InstallCostPerRoll)

	return WallpaperPrice{
		Total:      math.Round(material + install),
		Material:   math.Round(material),
		Install:    math.Round(install),
		Rolls:      rolls,
		Sqm:        totalWidth * height,
		TotalWidth: totalWidth,
	}
}
