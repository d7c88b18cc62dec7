package export

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Package the full working directory tree into a single zip archive at
// outPath. Directory entries are written explicitly so empty subdirectories
// survive extraction. When compress is false entries are stored without
// compression.
func (s *Session) WriteArchive(outPath string, compress bool) error {
	s.logger.Noticef("writing scene archive to %s", outPath)
	start := time.Now()

	method := zip.Deflate
	if !compress {
		method = zip.Store
	}

	zipFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)

	err = filepath.Walk(s.dir, func(pathToFile string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(s.dir, pathToFile)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if fi.IsDir() {
			_, err = zw.CreateHeader(&zip.FileHeader{
				Name:   rel + "/",
				Method: zip.Store,
			})
			return err
		}

		cw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   rel,
			Method: method,
		})
		if err != nil {
			return err
		}

		f, err := os.Open(pathToFile)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(cw, f)
		return err
	})
	if err != nil {
		zw.Close()
		return err
	}

	if err = zw.Close(); err != nil {
		return err
	}

	s.logger.Noticef("compressed archive in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}
