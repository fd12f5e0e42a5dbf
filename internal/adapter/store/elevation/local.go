// Package elevation provides digital elevation model loading from NetCDF
// files such as the GEBCO global grids.
package elevation

import (
	"fmt"
	"math"
	"sync"

	"github.com/fhs/go-netcdf/netcdf"

	"go.ngs.io/solar-api/internal/adapter/interp"
)

// LocalStore samples a DEM from a local NetCDF file. The file can be a
// local disk file or a GCS FUSE-mounted file. Only a window around the
// most recently requested location is held in memory; a request outside
// the cached window triggers a reload.
type LocalStore struct {
	path string // e.g., /mnt/dem/gebco_2024.nc

	grid   *interp.Grid2D
	bounds *gridBounds
	mu     sync.Mutex
}

// windowMargin is the half-width in degrees of the grid window cached
// around a requested location.
const windowMargin = 2.0

type gridBounds struct {
	minLat, maxLat float64
	minLon, maxLon float64
	lonWrap360     bool
}

func (b *gridBounds) contains(lat, lon float64) bool {
	if b == nil {
		return false
	}
	if b.lonWrap360 {
		lon = normalizeLon360(lon)
	}
	return lat >= b.minLat && lat <= b.maxLat && lon >= b.minLon && lon <= b.maxLon
}

func boundsFromGrid(grid *interp.Grid2D) *gridBounds {
	if grid == nil || len(grid.X) == 0 || len(grid.Y) == 0 {
		return nil
	}
	return &gridBounds{
		minLat:     grid.Y[0],
		maxLat:     grid.Y[len(grid.Y)-1],
		minLon:     grid.X[0],
		maxLon:     grid.X[len(grid.X)-1],
		lonWrap360: lonAxisRequiresWrap(grid.X),
	}
}

// lonAxisRequiresWrap reports whether the longitude axis runs [0, 360)
// rather than [-180, 180].
func lonAxisRequiresWrap(lons []float64) bool {
	if len(lons) == 0 {
		return false
	}
	return lons[0] >= 0 && lons[len(lons)-1] > 180
}

func normalizeLon360(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

// NewLocalStore creates a DEM store reading from the given NetCDF file.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

// ElevationAt samples the DEM at a location. Negative cells (ocean depth
// in GEBCO-style grids) are reported as zero elevation.
func (s *LocalStore) ElevationAt(lat, lon float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid == nil || !s.bounds.contains(lat, lon) {
		if err := s.loadWindow(lat, lon); err != nil {
			return 0, fmt.Errorf("failed to load DEM window: %w", err)
		}
	}

	x := lon
	if s.bounds.lonWrap360 {
		x = normalizeLon360(lon)
	}
	elev, err := s.grid.InterpolateAt(x, lat)
	if err != nil {
		return 0, fmt.Errorf("failed to sample DEM at (%.4f, %.4f): %w", lat, lon, err)
	}
	if elev < 0 {
		return 0, nil
	}
	return elev, nil
}

// loadWindow reads a subset of the DEM around the target location.
func (s *LocalStore) loadWindow(lat, lon float64) error {
	grid, err := loadNetCDFGridSubset(s.path, "elevation", lat, lon, windowMargin)
	if err != nil {
		return err
	}
	s.grid = grid
	s.bounds = boundsFromGrid(grid)
	return nil
}

// Close releases resources (no-op for local store).
func (s *LocalStore) Close() error {
	s.grid = nil
	s.bounds = nil
	return nil
}

// loadNetCDFGridSubset reads the window of a 2D grid within ±margin
// degrees of (targetLat, targetLon). If margin is 0 the entire grid is
// loaded.
func loadNetCDFGridSubset(filepath, dataVarName string, targetLat, targetLon, margin float64) (*interp.Grid2D, error) {
	nc, err := netcdf.OpenFile(filepath, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open NetCDF file: %w", err)
	}
	defer func() { _ = nc.Close() }()

	latData, err := readAxis(nc, []string{"lat", "latitude", "y"})
	if err != nil {
		return nil, fmt.Errorf("latitude axis: %w", err)
	}
	lonData, err := readAxis(nc, []string{"lon", "longitude", "x"})
	if err != nil {
		return nil, fmt.Errorf("longitude axis: %w", err)
	}

	latStart, latEnd := 0, len(latData)
	lonStart, lonEnd := 0, len(lonData)
	if margin > 0 {
		adjLon := targetLon
		if lonAxisRequiresWrap(lonData) {
			adjLon = normalizeLon360(targetLon)
		}
		latStart, latEnd = windowIndices(latData, targetLat, margin)
		lonStart, lonEnd = windowIndices(lonData, adjLon, margin)
	}

	dataVar, err := findVar(nc, []string{dataVarName, "z", "data"})
	if err != nil {
		return nil, err
	}
	dims, err := dataVar.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions: %w", err)
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("expected 2D data, got %dD", len(dims))
	}
	dim0Len, err := dims[0].Len()
	if err != nil {
		return nil, err
	}
	dim1Len, err := dims[1].Len()
	if err != nil {
		return nil, err
	}

	nLat := latEnd - latStart
	nLon := lonEnd - lonStart

	var values [][]float64
	switch {
	case dim0Len == uint64(len(latData)) && dim1Len == uint64(len(lonData)):
		// Data is [lat, lon].
		values, err = read2DSubset(dataVar, latStart, lonStart, nLat, nLon)
	case dim0Len == uint64(len(lonData)) && dim1Len == uint64(len(latData)):
		// Data is [lon, lat].
		var transposed [][]float64
		transposed, err = read2DSubset(dataVar, lonStart, latStart, nLon, nLat)
		if err == nil {
			values = transpose2D(transposed)
		}
	default:
		return nil, fmt.Errorf("dimension mismatch: data is [%d, %d], axes are lat=%d lon=%d",
			dim0Len, dim1Len, len(latData), len(lonData))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	grid := &interp.Grid2D{
		X:      lonData[lonStart:lonEnd],
		Y:      latData[latStart:latEnd],
		Values: values,
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	return grid, nil
}

// windowIndices returns the [start, end) slice of a sorted axis covering
// target±margin, widened so the window always spans at least two samples.
func windowIndices(axis []float64, target, margin float64) (int, int) {
	start := findNearestIndex(axis, target-margin)
	end := findNearestIndex(axis, target+margin)
	if start > end {
		start, end = end, start
	}
	start = clamp(start, 0, len(axis)-2)
	end = clamp(end+1, start+2, len(axis))
	return start, end
}

func findVar(nc netcdf.Dataset, names []string) (netcdf.Var, error) {
	for _, name := range names {
		if v, err := nc.Var(name); err == nil {
			return v, nil
		}
	}
	return netcdf.Var{}, fmt.Errorf("variable not found (tried: %v)", names)
}

// readAxis reads a 1D coordinate variable, trying several common names.
func readAxis(nc netcdf.Dataset, names []string) ([]float64, error) {
	v, err := findVar(nc, names)
	if err != nil {
		return nil, err
	}
	dims, err := v.Dims()
	if err != nil {
		return nil, fmt.Errorf("failed to get dimensions: %w", err)
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("expected 1D axis variable, got %dD", len(dims))
	}
	length, err := dims[0].Len()
	if err != nil {
		return nil, err
	}
	data := make([]float64, length)
	if err := v.ReadFloat64s(data); err != nil {
		return nil, err
	}
	return data, nil
}

// read2DSubset reads rows×cols values starting at [startRow, startCol].
// Supports float64, float32, int32 and int16 variables, applying any
// scale_factor attribute.
func read2DSubset(v netcdf.Var, startRow, startCol, nRows, nCols int) ([][]float64, error) {
	varType, err := v.Type()
	if err != nil {
		return nil, fmt.Errorf("failed to get variable type: %w", err)
	}

	totalSize := nRows * nCols
	//nolint:gosec // G115: Safe int to uint64 conversion for NetCDF indices.
	start := []uint64{uint64(startRow), uint64(startCol)}
	//nolint:gosec // G115: Safe int to uint64 conversion for NetCDF dimensions.
	count := []uint64{uint64(nRows), uint64(nCols)}

	var flatData []float64
	switch varType {
	case netcdf.DOUBLE:
		flatData = make([]float64, totalSize)
		if err := v.ReadFloat64Slice(flatData, start, count); err != nil {
			return nil, fmt.Errorf("failed to read float64 subset: %w", err)
		}
	case netcdf.FLOAT:
		float32Data := make([]float32, totalSize)
		if err := v.ReadFloat32Slice(float32Data, start, count); err != nil {
			return nil, fmt.Errorf("failed to read float32 subset: %w", err)
		}
		flatData = make([]float64, totalSize)
		for i, val := range float32Data {
			flatData[i] = float64(val)
		}
	case netcdf.SHORT:
		int16Data := make([]int16, totalSize)
		if err := v.ReadInt16Slice(int16Data, start, count); err != nil {
			return nil, fmt.Errorf("failed to read int16 subset: %w", err)
		}
		flatData = make([]float64, totalSize)
		for i, val := range int16Data {
			flatData[i] = float64(val)
		}
	case netcdf.INT:
		int32Data := make([]int32, totalSize)
		if err := v.ReadInt32Slice(int32Data, start, count); err != nil {
			return nil, fmt.Errorf("failed to read int32 subset: %w", err)
		}
		flatData = make([]float64, totalSize)
		for i, val := range int32Data {
			flatData[i] = float64(val)
		}
	case netcdf.BYTE, netcdf.UBYTE, netcdf.CHAR, netcdf.USHORT, netcdf.UINT, netcdf.INT64, netcdf.UINT64, netcdf.STRING:
		return nil, fmt.Errorf("unsupported data type: %v (expected DOUBLE, FLOAT, INT, or SHORT)", varType)
	}

	applyScaleFactor(v, flatData)

	values := make([][]float64, nRows)
	for i := 0; i < nRows; i++ {
		values[i] = flatData[i*nCols : (i+1)*nCols]
	}
	return values, nil
}

// applyScaleFactor multiplies data in place by the variable's scale_factor
// attribute when one is present.
func applyScaleFactor(v netcdf.Var, data []float64) {
	scaleAttr := v.Attr("scale_factor")
	attrLen, err := scaleAttr.Len()
	if err != nil || attrLen == 0 {
		return
	}
	scaleData := make([]float64, 1)
	if err := scaleAttr.ReadFloat64s(scaleData); err != nil || scaleData[0] == 0 {
		return
	}
	for i := range data {
		data[i] *= scaleData[0]
	}
}

func transpose2D(data [][]float64) [][]float64 {
	if len(data) == 0 {
		return data
	}
	nRows := len(data)
	nCols := len(data[0])
	transposed := make([][]float64, nCols)
	for i := 0; i < nCols; i++ {
		transposed[i] = make([]float64, nRows)
		for j := 0; j < nRows; j++ {
			transposed[i][j] = data[j][i]
		}
	}
	return transposed
}

// findNearestIndex finds the index of the value closest to target in a
// sorted array.
func findNearestIndex(arr []float64, target float64) int {
	if len(arr) == 0 {
		return 0
	}
	left, right := 0, len(arr)-1
	for left < right {
		mid := (left + right) / 2
		if arr[mid] < target {
			left = mid + 1
		} else {
			right = mid
		}
	}
	if left > 0 && math.Abs(arr[left-1]-target) < math.Abs(arr[left]-target) {
		return left - 1
	}
	return left
}

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
