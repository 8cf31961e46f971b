package images

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"gorgonia.org/tensor"
)

// ComputeChecksum generates a deterministic checksum of an image's dtype, shape
// and samples, used to verify idempotent loads.
//
// Arguments:
// - img: The image to compute checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
//
// Example:
//
// ```go
//
//	checksum := ComputeChecksum(img)
//	fmt.Printf("Image checksum: %s\n", checksum)
//
// ```
func ComputeChecksum(img *Image) string {
	if img == nil {
		return "empty"
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%s%v", img.Dtype(), img.Shape())

	switch img.Dtype() {
	case tensor.Uint8:
		hash.Write(img.Uint8s())
	case tensor.Uint16:
		buf := make([]byte, 2*len(img.Uint16s()))
		for i, v := range img.Uint16s() {
			binary.LittleEndian.PutUint16(buf[2*i:], v)
		}
		hash.Write(buf)
	case tensor.Bool:
		buf := make([]byte, len(img.Bools()))
		for i, v := range img.Bools() {
			if v {
				buf[i] = 1
			}
		}
		hash.Write(buf)
	}

	return fmt.Sprintf("%x", hash.Sum(nil))
}

// Checksum is ComputeChecksum(i).
func (i *Image) Checksum() string {
	return ComputeChecksum(i)
}
