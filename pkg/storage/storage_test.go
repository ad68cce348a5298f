package storage

import (
	"strings"
	"testing"
)

func bootLocal(t *testing.T) {
	t.Helper()

	t.Setenv("STORAGE_DISK", "local")
	t.Setenv("STORAGE_LOCAL_ROOT", t.TempDir())
	t.Setenv("STORAGE_URL", "/storage")

	if err := Connect(); err != nil {
		t.Fatal(err)
	}
}

func TestPutStreamAndURLOnDefaultDisk(t *testing.T) {
	bootLocal(t)

	if err := PutStream("uploads/2026/08/test.png", strings.NewReader("png-bytes")); err != nil {
		t.Fatal(err)
	}

	d, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if !d.Exists("uploads/2026/08/test.png") {
		t.Fatal("stored file not found on default disk")
	}

	data, err := d.Get("uploads/2026/08/test.png")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("content = %q, want png-bytes", data)
	}

	if got := URL("uploads/2026/08/test.png"); got != "/storage/uploads/2026/08/test.png" {
		t.Errorf("url = %q", got)
	}
}

func TestUseUnconfiguredDisk(t *testing.T) {
	bootLocal(t)

	if _, err := Use("s3"); err == nil {
		t.Error("expected error for unconfigured s3 disk")
	}
}
