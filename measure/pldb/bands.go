package pldb

// NumBands is the number of one-third-octave bands in the Mark VII table.
const NumBands = 41

// Band describes one one-third-octave frequency band in Hz.
type Band struct {
	Center float64
	Lower  float64
	Upper  float64
}

// Band limits from Stevens' Mark VII tables. The bands partition the
// spectrum: each upper limit equals the next band's lower limit. The first
// center frequency is nudged off 1.0 so its log10 never divides by zero in
// the equivalent-loudness remapping.
var bands = [NumBands]Band{
	{Center: 1.0000001, Lower: 0.89, Upper: 1.12},
	{Center: 1.25, Lower: 1.12, Upper: 1.41},
	{Center: 1.6, Lower: 1.41, Upper: 1.78},
	{Center: 2.0, Lower: 1.78, Upper: 2.24},
	{Center: 2.5, Lower: 2.24, Upper: 2.82},
	{Center: 3.15, Lower: 2.82, Upper: 3.55},
	{Center: 4.0, Lower: 3.55, Upper: 4.47},
	{Center: 5.0, Lower: 4.47, Upper: 5.62},
	{Center: 6.3, Lower: 5.62, Upper: 7.08},
	{Center: 8.0, Lower: 7.08, Upper: 8.91},
	{Center: 10.0, Lower: 8.91, Upper: 11.2},
	{Center: 12.5, Lower: 11.2, Upper: 14.1},
	{Center: 16.0, Lower: 14.1, Upper: 17.8},
	{Center: 20.0, Lower: 17.8, Upper: 22.4},
	{Center: 25.0, Lower: 22.4, Upper: 28.2},
	{Center: 31.5, Lower: 28.2, Upper: 35.5},
	{Center: 40.0, Lower: 35.5, Upper: 44.7},
	{Center: 50.0, Lower: 44.7, Upper: 56.2},
	{Center: 63.0, Lower: 56.2, Upper: 70.8},
	{Center: 80.0, Lower: 70.8, Upper: 89.1},
	{Center: 100.0, Lower: 89.1, Upper: 112.0},
	{Center: 125.0, Lower: 112.0, Upper: 141.0},
	{Center: 160.0, Lower: 141.0, Upper: 178.0},
	{Center: 200.0, Lower: 178.0, Upper: 224.0},
	{Center: 250.0, Lower: 224.0, Upper: 282.0},
	{Center: 315.0, Lower: 282.0, Upper: 355.0},
	{Center: 400.0, Lower: 355.0, Upper: 447.0},
	{Center: 500.0, Lower: 447.0, Upper: 562.0},
	{Center: 630.0, Lower: 562.0, Upper: 708.0},
	{Center: 800.0, Lower: 708.0, Upper: 891.0},
	{Center: 1000.0, Lower: 891.0, Upper: 1120.0},
	{Center: 1250.0, Lower: 1120.0, Upper: 1410.0},
	{Center: 1600.0, Lower: 1410.0, Upper: 1780.0},
	{Center: 2000.0, Lower: 1780.0, Upper: 2240.0},
	{Center: 2500.0, Lower: 2240.0, Upper: 2820.0},
	{Center: 3150.0, Lower: 2820.0, Upper: 3550.0},
	{Center: 4000.0, Lower: 3550.0, Upper: 4470.0},
	{Center: 5000.0, Lower: 4470.0, Upper: 5620.0},
	{Center: 6300.0, Lower: 5620.0, Upper: 7080.0},
	{Center: 8000.0, Lower: 7080.0, Upper: 8910.0},
	{Center: 10000.0, Lower: 8910.0, Upper: 11200.0},
}

// Bands returns a copy of the one-third-octave band table.
func Bands() []Band {
	out := make([]Band, NumBands)
	copy(out, bands[:])
	return out
}

// boundaryFrequencies returns the 41 lower limits plus the highest upper
// limit: the 42 frequencies at which the power spectrum needs interpolated
// entries for exact band-edge integration.
func boundaryFrequencies() []float64 {
	out := make([]float64, NumBands+1)
	for i, b := range bands {
		out[i] = b.Lower
	}
	out[NumBands] = bands[NumBands-1].Upper
	return out
}
