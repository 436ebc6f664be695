package export

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// qrStamp renders the share-link QR drawn into the card footer corner.
func qrStamp(text string, size int) (image.Image, error) {
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
