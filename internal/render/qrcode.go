package render

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// BrandQRCode returns a QR code for url tinted to sit on dark artwork:
// near-black modules on the pale lavender text color, which scanners read
// as a normal dark-on-light code.
func BrandQRCode(url string, sizePx int) (image.Image, error) {
	if url == "" {
		return nil, fmt.Errorf("qr code: empty url")
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr code: %w", err)
	}
	qrCode.ForegroundColor = BGTop
	qrCode.BackgroundColor = TextColor

	return qrCode.Image(sizePx), nil
}
