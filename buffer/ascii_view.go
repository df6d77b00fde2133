package buffer

// AsciiView is an immutable borrowed substring over a Region: a
// {region, offset, length} triple. It never copies the underlying bytes;
// CharAt and Subsequence index directly into the region.
type AsciiView struct {
	region Region
	offset int
	length int
}

// NewAsciiView returns an AsciiView over region's [offset, offset+length) range.
func NewAsciiView(region Region, offset, length int) *AsciiView {
	return &AsciiView{region: region, offset: offset, length: length}
}

// Len returns the view's length in bytes.
func (a *AsciiView) Len() int { return a.length }

// CharAt returns the byte at position i within the view.
func (a *AsciiView) CharAt(i int) (byte, error) {
	var tmp [1]byte
	if err := a.region.ReadAt(a.offset+i, tmp[:], 0, 1); err != nil {
		return 0, err
	}

	return tmp[0], nil
}

// Subsequence returns the [start, end) sub-range of the view as a new
// AsciiView over the same region, without copying: it is byte-identical to
// the original's [start, end) range for as long as the region's contents
// are unchanged.
func (a *AsciiView) Subsequence(start, end int) *AsciiView {
	return &AsciiView{region: a.region, offset: a.offset + start, length: end - start}
}

// Bytes copies the view's bytes into a new slice.
func (a *AsciiView) Bytes() ([]byte, error) {
	dst := make([]byte, a.length)
	if err := a.region.ReadAt(a.offset, dst, 0, a.length); err != nil {
		return nil, err
	}

	return dst, nil
}

// String copies the view's bytes into a new string.
func (a *AsciiView) String() (string, error) {
	b, err := a.Bytes()
	if err != nil {
		return "", err
	}

	return string(b), nil
}
