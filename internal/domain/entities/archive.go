package entities

// ArchiveFormat selects the compression applied to the backup tarball.
type ArchiveFormat string

const (
	ArchiveBzip2 ArchiveFormat = "bzip2"
	ArchiveGzip  ArchiveFormat = "gzip"
)

// ArchiveRequest describes the optional final packaging step: the whole
// workspace tree is written as a compressed tar archive to OutputPath.
type ArchiveRequest struct {
	Format     ArchiveFormat
	OutputPath string
}
