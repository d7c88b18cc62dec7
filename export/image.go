package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f1vefour/carbide/scene"
)

// File extensions for the image encodings the renderer loads natively.
// Anything else is converted to PNG on export.
var imageFormatExt = map[scene.ImageFormat]string{
	scene.ImageBMP:      ".bmp",
	scene.ImagePNG:      ".png",
	scene.ImageJPEG:     ".jpg",
	scene.ImageTarga:    ".tga",
	scene.ImageTargaRaw: ".tga",
	scene.ImageHDR:      ".hdr",
}

// Resolve a host image to a path usable inside the manifest.
//
// Images in a renderer-compatible encoding that are backed by an existing
// file are referenced in place when the session is not self-contained; the
// reference is relative to the working directory when possible and absolute
// otherwise. Everything else is materialized into the working directory: a
// compatible encoding is re-saved as-is, an incompatible one is converted to
// PNG. The result is cached by image name, so each image is resolved at most
// once per session.
func (s *Session) AddImage(im *scene.Image) (string, error) {
	if ref, exists := s.images[im.Name]; exists {
		return ref, nil
	}

	ext, compatible := imageFormatExt[im.FileFormat]
	if compatible {
		if im.Filepath != "" && fileExists(im.Filepath) && !s.selfContained {
			// Reference the existing file without copying bytes.
			abs, err := filepath.Abs(im.Filepath)
			if err != nil {
				abs = im.Filepath
			}
			ref, err := filepath.Rel(s.dir, abs)
			if err != nil {
				ref = abs
			}
			s.images[im.Name] = ref
			return ref, nil
		}

		// Re-save into the working directory keeping the native encoding.
		ref := im.Name + ext
		if err := s.saveImageAs(im, ref, im.FileFormat); err != nil {
			return "", err
		}
		s.images[im.Name] = ref
		return ref, nil
	}

	// Unrecognized encoding; convert to PNG.
	ref := im.Name + ".png"
	if err := s.saveImageAs(im, ref, scene.ImagePNG); err != nil {
		return "", err
	}
	s.images[im.Name] = ref
	return ref, nil
}

// Write an image into the working directory through the image saver.
func (s *Session) saveImageAs(im *scene.Image, dest string, format scene.ImageFormat) error {
	if s.conv.Image == nil {
		return fmt.Errorf("export: no image saver configured; cannot export %q", im.Name)
	}

	start := time.Now()
	if err := s.conv.Image.SaveImage(im, s.Path(dest), format); err != nil {
		return fmt.Errorf("export: image %q: %v", im.Name, err)
	}
	s.logger.Infof("wrote %s in %d ms", dest, time.Since(start).Nanoseconds()/1e6)
	return nil
}

func fileExists(pathToFile string) bool {
	fi, err := os.Stat(pathToFile)
	return err == nil && !fi.IsDir()
}
