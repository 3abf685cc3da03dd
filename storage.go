package pgmtools

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// IsGoogleStoragePath reports whether path points at a gs:// object.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// SplitGoogleStoragePath splits gs://bucket/path/to/object into its bucket and
// object name.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into bucket and object, but got %d parts: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// NewClientIfNeeded initializes a Google Storage client only if one of the
// paths points to Google Storage. Otherwise it returns nil.
func NewClientIfNeeded(paths ...string) (*storage.Client, error) {
	for _, path := range paths {
		if IsGoogleStoragePath(path) {
			return storage.NewClient(context.Background())
		}
	}

	return nil, nil
}

// MaybeOpenFromGoogleStorage opens a local file, or a gs:// object if client
// is set, and returns its size.
func MaybeOpenFromGoogleStorage(path string, client *storage.Client) (io.ReadCloser, int64, error) {
	if client != nil && IsGoogleStoragePath(path) {
		bucketName, pathName, err := SplitGoogleStoragePath(path)
		if err != nil {
			return nil, 0, err
		}

		// Open the bucket with default credentials
		handle := client.Bucket(bucketName).Object(pathName)

		// Make a hard call to get the filesize
		attrs, err := handle.Attrs(context.Background())
		if err != nil {
			return nil, 0, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}

		rdr, err := handle.NewReader(context.Background())
		if err != nil {
			return nil, 0, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}

		return rdr, attrs.Size, nil
	}

	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, 0, err
	}
	fstat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	return f, fstat.Size(), nil
}

// Output is a file or gs:// object being written. Close keeps what was
// written; Abort discards it.
type Output struct {
	io.Writer
	Path string

	closer io.Closer

	// Set for gs:// objects. Cancelling the writer's context before Close
	// aborts the upload.
	cancel context.CancelFunc
}

// Close commits the output.
func (o *Output) Close() error {
	err := o.closer.Close()
	if o.cancel != nil {
		o.cancel()
	}

	return err
}

// Abort discards the output. A gs:// upload is cancelled before its writer is
// closed, so no object is created; a local file is closed and removed.
func (o *Output) Abort() error {
	if o.cancel != nil {
		o.cancel()

		// Close returns context.Canceled here.
		o.closer.Close()
		return nil
	}

	o.closer.Close()
	if err := os.Remove(ExpandHome(o.Path)); err != nil && !os.IsNotExist(err) {
		return pfx.Err(err)
	}

	return nil
}

// MaybeCreateOnGoogleStorage creates (or truncates) a local file, or a gs://
// object if client is set. For gs:// objects, the object only appears once
// Close succeeds.
func MaybeCreateOnGoogleStorage(path string, client *storage.Client) (*Output, error) {
	if client != nil && IsGoogleStoragePath(path) {
		bucketName, pathName, err := SplitGoogleStoragePath(path)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithCancel(context.Background())
		w := client.Bucket(bucketName).Object(pathName).NewWriter(ctx)

		return &Output{Writer: w, Path: path, closer: w, cancel: cancel}, nil
	}

	f, err := os.Create(ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}

	return &Output{Writer: f, Path: path, closer: f}, nil
}

// JoinPath joins a folder and a file name, keeping the gs:// scheme intact.
func JoinPath(folder, name string) string {
	if IsGoogleStoragePath(folder) {
		return strings.TrimSuffix(folder, "/") + "/" + name
	}

	return filepath.Join(ExpandHome(folder), name)
}

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return path
		}
		path = filepath.Join(usr.HomeDir, path[2:])
	}

	return path
}
