package cmaptable

// PlatformID is the platform of a cmap subtable.
type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1 // not supported
	PlatformIDWindows   PlatformID = 3
)

// EncodingID is the platform-specific encoding of a cmap subtable.
type EncodingID uint16

const (
	EncodingIDWindowsSymbol EncodingID = 0 // not supported
	EncodingIDWindowsBMP    EncodingID = 1
	EncodingIDWindowsUCS4   EncodingID = 10
)

// Accepts reports whether a subtable for platform p and encoding e takes part
// in building a Table.
func Accepts(p PlatformID, e EncodingID) bool {
	switch p {
	case PlatformIDUnicode:
		return true
	case PlatformIDWindows:
		return e == EncodingIDWindowsBMP || e == EncodingIDWindowsUCS4
	}
	return false
}
