package pgmtools

import (
	"bytes"
	"image"
	"io/ioutil"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"cloud.google.com/go/storage"
	_ "github.com/jbuchbinder/gopnm"
	_ "golang.org/x/image/bmp"
)

// ImageFromBytes creates an image from the specified bytes. Must be PNG, GIF,
// BMP, JPEG or PNM formatted (based on the decoders we have imported).
func ImageFromBytes(imgBytes []byte) (image.Image, string, error) {
	return image.Decode(bytes.NewReader(imgBytes))
}

// OpenImage decodes an image from a local file or Google Storage.
func OpenImage(filePath string, storageClient *storage.Client) (image.Image, string, error) {
	f, _, err := MaybeOpenFromGoogleStorage(filePath, storageClient)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	// The image decoder swallows errors, so we won't see i/o errors if they
	// happen during image decoding. To capture these, we read the full image
	// into memory here, and pass a byte reader to the image decoder.
	imgBytes, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, "", err
	}

	return ImageFromBytes(imgBytes)
}
