// Package deviceprofile groups the product-dependent wire-framing and
// chunking parameters into a single value selected once at connect time
// from the device's product id, rather than branching on product code
// throughout the file-transfer layer.
package deviceprofile

// Profile bundles the report size and file-transfer chunk sizes that vary
// by product.
type Profile struct {
	ReportSize int
	ReadChunk  uint32
	WriteChunk uint32
}

// productVariant is the one product code observed with non-default sizing.
const productVariant = 0x7474

// defaultProfile covers every product except productVariant.
var defaultProfile = Profile{
	ReportSize: 256,
	ReadChunk:  242,
	WriteChunk: 246,
}

// variantProfile covers productVariant.
var variantProfile = Profile{
	ReportSize: 64,
	ReadChunk:  50,
	WriteChunk: 54,
}

// ForProductID resolves the Profile for a 32-bit product identifier as
// returned by GetProductId. Only the low 16 bits carry the product code.
func ForProductID(productID uint32) Profile {
	if uint16(productID) == productVariant {
		return variantProfile
	}
	return defaultProfile
}
