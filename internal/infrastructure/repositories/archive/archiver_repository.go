package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"

	"github.com/rios0rios0/gistbackup/internal/domain/entities"
	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
)

// ArchiverRepository writes a directory tree as a compressed tar archive.
type ArchiverRepository struct{}

// NewArchiverRepository creates a new ArchiverRepository.
func NewArchiverRepository() repositories.ArchiverRepository {
	return &ArchiverRepository{}
}

// Archive streams sourceDir into a tar archive at request.OutputPath,
// compressed according to request.Format. The base name of sourceDir is the
// archive's top-level entry.
func (r *ArchiverRepository) Archive(
	ctx context.Context,
	sourceDir string,
	request entities.ArchiveRequest,
) (err error) {
	out, err := os.Create(request.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create archive file %q: %w", request.OutputPath, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close archive file: %w", closeErr)
		}
	}()

	compressor, err := newCompressor(out, request.Format)
	if err != nil {
		return err
	}

	tarWriter := tar.NewWriter(compressor)
	if walkErr := writeTree(ctx, tarWriter, sourceDir); walkErr != nil {
		return walkErr
	}

	if closeErr := tarWriter.Close(); closeErr != nil {
		return fmt.Errorf("failed to finish tar stream: %w", closeErr)
	}
	if closeErr := compressor.Close(); closeErr != nil {
		return fmt.Errorf("failed to finish compression: %w", closeErr)
	}
	return nil
}

// newCompressor wraps w in the writer for the requested format.
func newCompressor(w io.Writer, format entities.ArchiveFormat) (io.WriteCloser, error) {
	switch format {
	case entities.ArchiveGzip:
		return gzip.NewWriter(w), nil
	case entities.ArchiveBzip2:
		writer, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
		if err != nil {
			return nil, fmt.Errorf("failed to create bzip2 writer: %w", err)
		}
		return writer, nil
	default:
		return nil, fmt.Errorf("unsupported archive format: %q", format)
	}
}

// writeTree walks sourceDir and writes every entry, rooted at the directory's
// base name, into the tar stream. Symlinks are stored as links, not followed.
func writeTree(ctx context.Context, tarWriter *tar.Writer, sourceDir string) error {
	base := filepath.Base(sourceDir)

	return filepath.Walk(sourceDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		relative, relErr := filepath.Rel(sourceDir, path)
		if relErr != nil {
			return relErr
		}

		link := ""
		if info.Mode()&os.ModeSymlink != 0 {
			target, readErr := os.Readlink(path)
			if readErr != nil {
				return fmt.Errorf("failed to read symlink %q: %w", path, readErr)
			}
			link = target
		}

		header, headerErr := tar.FileInfoHeader(info, link)
		if headerErr != nil {
			return fmt.Errorf("failed to build tar header for %q: %w", path, headerErr)
		}
		header.Name = filepath.ToSlash(filepath.Join(base, relative))
		if info.IsDir() {
			header.Name += "/"
		}

		if writeErr := tarWriter.WriteHeader(header); writeErr != nil {
			return fmt.Errorf("failed to write tar header for %q: %w", path, writeErr)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		file, openErr := os.Open(path)
		if openErr != nil {
			return fmt.Errorf("failed to open %q: %w", path, openErr)
		}
		defer file.Close()

		if _, copyErr := io.Copy(tarWriter, file); copyErr != nil {
			return fmt.Errorf("failed to archive %q: %w", path, copyErr)
		}
		return nil
	})
}
