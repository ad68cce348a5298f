// Package storage abstracts where uploaded media lives.
//
// Two drivers are available:
//   - "local" — local filesystem (default), served under /storage
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2)
//
// Boot once at startup, then:
//
//	storage.PutStream("products/kombi.jpg", file)
//	url := storage.URL("products/kombi.jpg")
package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/isipark/siteapi/config"
)

// Disk is the driver interface for one storage backend.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// Size returns the byte size of the file.
	Size(path string) (int64, error)

	// URL returns the public URL for path.
	URL(path string) string
}

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. The local disk is always available;
// the s3 disk only when S3_BUCKET is configured.
func Connect() error {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDefault()
	disks["local"] = newLocalDisk()

	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			return fmt.Errorf("storage: boot s3 disk: %w", err)
		}
		disks["s3"] = d
	}

	if _, ok := disks[defaultDisk]; !ok {
		return fmt.Errorf("storage: default disk %q is not configured", defaultDisk)
	}
	return nil
}

// Use returns the named disk ("local" or "s3").
func Use(name string) (Disk, error) {
	managerMu.RLock()
	defer managerMu.RUnlock()

	d, ok := disks[name]
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return d, nil
}

// Default returns the disk selected by STORAGE_DISK.
func Default() (Disk, error) {
	managerMu.RLock()
	name := defaultDisk
	managerMu.RUnlock()
	return Use(name)
}

// PutStream writes from r to path on the default disk.
func PutStream(path string, r io.Reader) error {
	d, err := Default()
	if err != nil {
		return err
	}
	return d.PutStream(path, r)
}

// URL returns the public URL for path on the default disk, or "" when
// no default disk is configured.
func URL(path string) string {
	d, err := Default()
	if err != nil {
		return ""
	}
	return d.URL(path)
}
