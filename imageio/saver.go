// Package imageio persists host images with Go-native codecs. It implements
// the export image saver collaborator.
package imageio

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"

	"github.com/f1vefour/carbide/scene"
)

type Saver struct{}

// Save a host image to pathToFile in the requested encoding. A file-backed
// image already in the target encoding is copied byte for byte, preserving
// its exact contents. Anything else is encoded from the decoded pixel data;
// formats without a Go encoder (TARGA, HDR) can only be saved by copy.
func (Saver) SaveImage(im *scene.Image, pathToFile string, format scene.ImageFormat) error {
	if im.Source == scene.ImageSourceFile && im.FileFormat == format && im.Filepath != "" {
		return copyFile(im.Filepath, pathToFile)
	}

	if im.Pixels == nil {
		return fmt.Errorf("imageio: image %q has no decoded pixel data to encode", im.Name)
	}

	f, err := os.Create(pathToFile)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case scene.ImagePNG:
		return png.Encode(f, im.Pixels)
	case scene.ImageJPEG:
		return jpeg.Encode(f, im.Pixels, nil)
	case scene.ImageBMP:
		return bmp.Encode(f, im.Pixels)
	default:
		return fmt.Errorf("imageio: no encoder for %s images", format)
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
