package geo

// Region is one federal unit: a display coordinate for plotting
// (percentages over the map SVG) and an approximate bounding box used
// for point classification. Boxes overlap; Classify takes the first
// match in catalog order.
type Region struct {
	Code   string
	X, Y   float64
	LatMin float64
	LatMax float64
	LngMin float64
	LngMax float64
}

// The source table stored AP and RR with latitude min/max reversed
// (their boxes cross the equator); the values below are normalized to
// true min/max so the containment test works.
var regions = []Region{
	{"AC", 18, 42, -11.15, -7.11, -73.99, -66.63},
	{"AL", 88, 48, -10.50, -8.81, -38.24, -35.15},
	{"AP", 52, 22, -1.23, 4.44, -54.87, -49.87},
	{"AM", 30, 35, -9.82, 2.25, -73.79, -56.10},
	{"BA", 78, 50, -18.35, -8.53, -46.62, -37.34},
	{"CE", 85, 38, -7.86, -2.78, -41.42, -37.25},
	{"DF", 63, 58, -16.05, -15.50, -48.29, -47.31},
	{"ES", 80, 65, -21.30, -17.89, -41.88, -39.68},
	{"GO", 60, 58, -19.50, -12.39, -53.25, -45.91},
	{"MA", 70, 35, -10.26, -1.05, -48.76, -41.79},
	{"MT", 45, 52, -18.04, -7.35, -61.63, -50.22},
	{"MS", 48, 68, -24.07, -17.17, -58.17, -53.26},
	{"MG", 70, 62, -22.92, -14.23, -51.05, -39.86},
	{"PA", 50, 32, -9.84, 2.59, -58.90, -46.06},
	{"PB", 90, 42, -8.30, -6.02, -38.77, -34.79},
	{"PR", 58, 75, -26.72, -22.52, -54.62, -48.02},
	{"PE", 88, 42, -9.49, -7.15, -41.36, -34.81},
	{"PI", 75, 40, -10.93, -2.74, -45.99, -40.37},
	{"RJ", 74, 70, -23.37, -20.76, -44.89, -40.96},
	{"RN", 88, 38, -6.98, -4.83, -38.58, -34.97},
	{"RS", 55, 85, -33.75, -27.08, -57.65, -49.69},
	{"RO", 28, 48, -13.69, -7.97, -66.62, -59.77},
	{"RR", 32, 18, -1.00, 5.27, -64.82, -58.88},
	{"SC", 58, 80, -29.35, -25.96, -53.84, -48.36},
	{"SP", 62, 70, -25.31, -19.78, -53.11, -44.16},
	{"SE", 85, 48, -11.57, -9.51, -38.25, -36.39},
	{"TO", 62, 45, -13.47, -5.17, -50.73, -45.73},
}

// Catalog returns the fixed region list in classification order.
func Catalog() []Region { return regions }
