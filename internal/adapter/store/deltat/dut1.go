package deltat

import "sort"

// dut1Anchors holds UT1-UTC (seconds) at January 1 of each year, from the
// IERS bulletins. The value is bounded to +/-0.9 s by leap second
// scheduling, so linear interpolation between yearly anchors stays within
// a few tenths of a second of the published series, which is below the
// angular resolution of the position calculation.
var dut1Anchors = []entry{
	{2000.0, 0.355},
	{2001.0, 0.093},
	{2002.0, -0.116},
	{2003.0, -0.289},
	{2004.0, -0.389},
	{2005.0, -0.503},
	{2006.0, 0.339},
	{2007.0, 0.019},
	{2008.0, -0.234},
	{2009.0, 0.407},
	{2010.0, 0.114},
	{2011.0, -0.141},
	{2012.0, -0.412},
	{2013.0, 0.268},
	{2014.0, -0.099},
	{2015.0, -0.425},
	{2016.0, 0.270},
	{2017.0, 0.591},
	{2018.0, 0.216},
	{2019.0, -0.011},
	{2020.0, -0.177},
	{2021.0, -0.175},
	{2022.0, -0.110},
	{2023.0, -0.014},
	{2024.0, 0.010},
	{2025.0, 0.040},
}

// EstimateDUT1 returns UT1-UTC in seconds for the given calendar month,
// interpolated linearly between the yearly anchors. Outside the anchor
// range it returns 0, which is always within the +/-0.9 s bound.
func EstimateDUT1(year, month int) float64 {
	y := decimalYear(year, month)
	n := len(dut1Anchors)
	if y < dut1Anchors[0].year || y > dut1Anchors[n-1].year {
		return 0
	}

	i := sort.Search(n, func(i int) bool { return dut1Anchors[i].year >= y })
	if i == 0 {
		return dut1Anchors[0].deltaT
	}
	lo, hi := dut1Anchors[i-1], dut1Anchors[i]
	frac := (y - lo.year) / (hi.year - lo.year)
	return lo.deltaT + frac*(hi.deltaT-lo.deltaT)
}
