package pldb

import (
	"fmt"
	"sort"
)

// sonesByLevel maps equivalent loudness in dB to sones over the domain
// 1..140 dB in 1 dB steps. Tabulated by Stevens for the Mark VII procedure.
var sonesByLevel = [140]float64{
	0.078, 0.087, 0.097, 0.107, 0.118,
	0.129, 0.141, 0.153, 0.166, 0.181,
	0.196, 0.212, 0.230, 0.248, 0.269,
	0.290, 0.314, 0.339, 0.367, 0.396,
	0.428, 0.463, 0.500, 0.540, 0.583,
	0.630, 0.680, 0.735, 0.794, 0.857,
	0.926, 1.000, 1.080, 1.170, 1.260,
	1.360, 1.470, 1.590, 1.710, 1.850,
	2.000, 2.160, 2.330, 2.520, 2.720,
	2.940, 3.180, 3.430, 3.700, 4.000,
	4.320, 4.670, 5.040, 5.440, 5.880,
	6.350, 6.860, 7.410, 8.000, 8.640,
	9.330, 10.10, 10.90, 11.80, 12.70,
	13.70, 14.80, 16.00, 17.30, 18.70,
	20.20, 21.80, 23.50, 25.40, 27.40,
	29.60, 32.00, 34.60, 37.30, 40.30,
	43.50, 47.00, 50.80, 54.90, 59.30,
	64.00, 69.10, 74.70, 80.60, 87.10,
	94.10, 102.0, 110.0, 119.0, 128.0,
	138.0, 149.0, 161.0, 174.0, 188.0,
	203.0, 219.0, 237.0, 256.0, 276.0,
	299.0, 323.0, 348.0, 376.0, 406.0,
	439.0, 474.0, 512.0, 553.0, 597.0,
	645.0, 697.0, 752.0, 813.0, 878.0,
	948.0, 1024., 1106., 1194., 1290.,
	1393., 1505., 1625., 1756., 1896.,
	2048., 2212., 2389., 2580., 2787.,
	3010., 3251., 3511., 3792., 4096.,
}

// summationFactors maps the loudest band's sone value to the damping factor
// applied to the remaining bands' contributions. Its domain is
// sonesByLevel[9:104] (0.181 .. 256 sones).
var summationFactors = [95]float64{
	0.100, 0.122, 0.140, 0.158, 0.174,
	0.187, 0.200, 0.212, 0.222, 0.232,
	0.241, 0.250, 0.259, 0.267, 0.274,
	0.281, 0.287, 0.293, 0.298, 0.303,
	0.308, 0.312, 0.316, 0.319, 0.320,
	0.322, 0.322, 0.320, 0.319, 0.317,
	0.314, 0.311, 0.308, 0.304, 0.300,
	0.296, 0.292, 0.288, 0.284, 0.279,
	0.275, 0.270, 0.266, 0.262, 0.258,
	0.253, 0.248, 0.244, 0.240, 0.235,
	0.230, 0.226, 0.222, 0.217, 0.212,
	0.208, 0.204, 0.200, 0.197, 0.195,
	0.194, 0.193, 0.192, 0.191, 0.190,
	0.190, 0.190, 0.190, 0.190, 0.190,
	0.191, 0.191, 0.192, 0.193, 0.194,
	0.195, 0.197, 0.199, 0.201, 0.203,
	0.205, 0.208, 0.210, 0.212, 0.215,
	0.217, 0.219, 0.221, 0.223, 0.224,
	0.225, 0.226, 0.227, 0.227, 0.227,
}

// loudnessDomain holds the 1..140 dB x axis of sonesByLevel.
var loudnessDomain = func() []float64 {
	out := make([]float64, len(sonesByLevel))
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}()

// summationDomain is the sone x axis of summationFactors. It aliases the
// sones table, which is read-only after init.
var summationDomain = sonesByLevel[9 : 9+len(summationFactors)]

func init() {
	// Interpolation over both tables requires a strictly increasing sone
	// column; the summation domain is a sub-slice of the same column.
	for i := 1; i < len(sonesByLevel); i++ {
		if sonesByLevel[i] <= sonesByLevel[i-1] {
			panic(fmt.Sprintf("pldb: sones table not strictly increasing at index %d", i))
		}
	}
}

// lookupBelow interpolates q against (xs, ys), returning below for queries
// under the domain and the last table value above it. This mirrors the
// original tables' clamping: loudness under the 1 dB floor contributes zero
// sones rather than the smallest tabulated value.
func lookupBelow(q float64, xs, ys []float64, below float64) float64 {
	if q < xs[0] {
		return below
	}
	if q >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}

	j := sort.SearchFloat64s(xs, q)
	if xs[j] == q {
		return ys[j]
	}
	t := (q - xs[j-1]) / (xs[j] - xs[j-1])
	return ys[j-1] + t*(ys[j]-ys[j-1])
}

// sonesFromLoudness converts an equivalent loudness in dB to sones.
func sonesFromLoudness(leq float64) float64 {
	return lookupBelow(leq, loudnessDomain, sonesByLevel[:], 0)
}

// summationFactor returns the damping factor for a given loudest-band sone
// value.
func summationFactor(maxSones float64) float64 {
	return lookupBelow(maxSones, summationDomain, summationFactors[:], 0)
}
