package vesting

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTotalPeriods(t *testing.T) {
	Convey("Allocations vest over a number of periods set by their size", t, func() {
		Convey("Small allocations vest over three periods", func() {
			So(TotalPeriods(1), ShouldEqual, uint64(3))
			So(TotalPeriods(75000000000), ShouldEqual, uint64(3))
		})

		Convey("Tier thresholds are exclusive", func() {
			So(TotalPeriods(75000000001), ShouldEqual, uint64(6))
			So(TotalPeriods(150000000000), ShouldEqual, uint64(6))
			So(TotalPeriods(150000000001), ShouldEqual, uint64(9))
			So(TotalPeriods(300000000000), ShouldEqual, uint64(9))
			So(TotalPeriods(300000000001), ShouldEqual, uint64(12))
		})

		Convey("The largest tier has no upper bound", func() {
			So(TotalPeriods(^uint64(0)), ShouldEqual, uint64(12))
		})

		Convey("Derivation is stable", func() {
			for _, amount := range []uint64{0, 1, 75000000001, 150000000001, 300000000001} {
				So(TotalPeriods(amount), ShouldEqual, TotalPeriods(amount))
			}
		})
	})
}
