package taylor

import (
	"math"

	"github.com/uyouii/series-approximation/model"
)

const (
	// ErrorFloorEpsilon keeps log10 of an exact match finite, it is not a precision bound.
	ErrorFloorEpsilon = 1e-15

	DefaultPointCount = 1000
)

var (
	FullViewInterval  = model.Interval{Lower: -2 * math.Pi, Upper: 2 * math.Pi}
	LocalViewInterval = model.Interval{Lower: -math.Pi, Upper: math.Pi}

	FullViewOrders  = []model.TruncationOrder{1, 3, 5, 7, 9, 15}
	LocalViewOrders = []model.TruncationOrder{1, 3, 5, 7, 9}
	CompactOrders   = []model.TruncationOrder{1, 3, 5, 8}
)

type Preset struct {
	Name       string
	Interval   model.Interval
	PointCount int
	Orders     []model.TruncationOrder
}

var (
	FullViewPreset = Preset{
		Name:       "full",
		Interval:   FullViewInterval,
		PointCount: DefaultPointCount,
		Orders:     FullViewOrders,
	}
	LocalViewPreset = Preset{
		Name:       "local",
		Interval:   LocalViewInterval,
		PointCount: DefaultPointCount,
		Orders:     LocalViewOrders,
	}
	CompactPreset = Preset{
		Name:       "compact",
		Interval:   FullViewInterval,
		PointCount: DefaultPointCount,
		Orders:     CompactOrders,
	}
)
