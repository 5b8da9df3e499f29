package heredity

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Open reads a pedigree CSV from path and returns the validated Pedigree.
// path may be a local file, "-" for stdin, or a gs://bucket/object URL.
// gzip- and zstd-compressed files are decompressed transparently, detected by
// magic bytes for local files and by the .gz/.zst suffix for remote objects.
func Open(path string) (*Pedigree, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	return ReadCSV(rc)
}

// multiReadCloser closes every underlying closer when Close is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	if strings.HasPrefix(path, "gs://") {
		return openGoogleStorage(path)
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// Sniff the compression codec by magic number, falling back to the file
	// suffix for short files.
	var sig [4]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, pfx.Err(err)
	}

	switch {
	case (n >= 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz"):
		return gzipReadCloser(fh)
	case (n == 4 && sig[0] == 0x28 && sig[1] == 0xb5 && sig[2] == 0x2f && sig[3] == 0xfd) || strings.HasSuffix(path, ".zst"):
		return zstdReadCloser(fh)
	}

	return fh, nil
}

func gzipReadCloser(rc io.ReadCloser) (io.ReadCloser, error) {
	gz, err := gzip.NewReader(rc)
	if err != nil {
		_ = rc.Close()
		return nil, pfx.Err(err)
	}
	return &multiReadCloser{Reader: gz, closers: []io.Closer{gz, rc}}, nil
}

func zstdReadCloser(rc io.ReadCloser) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(rc)
	if err != nil {
		_ = rc.Close()
		return nil, pfx.Err(err)
	}
	return &multiReadCloser{Reader: dec, closers: []io.Closer{dec.IOReadCloser(), rc}}, nil
}

// openGoogleStorage fetches a pedigree object from Google Cloud Storage.
func openGoogleStorage(path string) (io.ReadCloser, error) {
	trimmed := strings.TrimPrefix(path, "gs://")
	slash := strings.Index(trimmed, "/")
	if slash < 1 || slash == len(trimmed)-1 {
		return nil, pfx.Err(fmt.Errorf("malformed Google Storage path %q; expected gs://bucket/object", path))
	}
	bucket, object := trimmed[:slash], trimmed[slash+1:]

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rdr, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		_ = client.Close()
		return nil, pfx.Err(err)
	}

	rc := io.ReadCloser(&multiReadCloser{Reader: rdr, closers: []io.Closer{rdr, client}})
	switch {
	case strings.HasSuffix(object, ".gz"):
		return gzipReadCloser(rc)
	case strings.HasSuffix(object, ".zst"):
		return zstdReadCloser(rc)
	}

	return rc, nil
}
