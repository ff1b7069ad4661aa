// Package container loads, makes, opens and closes resource containers: a
// directory holding a manifest.yaml plus content, packed as a compressed tar
// archive when closed.
package container

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"resource_catalog/internal/domain"
)

type Options struct {
	// Compression used by Close; Open detects the codec itself.
	Compression string
}

// Container is an open resource container directory.
type Container struct {
	path     string
	manifest Manifest
}

func (c *Container) Path() string { return c.path }

func (c *Container) Slug() string { return c.manifest.Slug() }

func (c *Container) Type() string { return c.manifest.Resource.Type }

func (c *Container) Manifest() Manifest { return c.manifest }

// ArchiveName is the file name of a closed container.
func ArchiveName(language, project, resource string) string {
	return fmt.Sprintf("%s_%s_%s%s", language, project, resource, Ext)
}

// Load reads an open container directory.
func Load(dir string, _ Options) (*Container, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, &domain.ContainerStateError{Path: dir, Err: domain.ErrManifestMissing}
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := decodeManifest(data)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(dir, m); err != nil {
		return nil, err
	}
	return &Container{path: dir, manifest: *m}, nil
}

func checkVersion(path string, m *Manifest) error {
	switch {
	case m.PackageVersion > SpecVersion:
		return &domain.ContainerStateError{Path: path, Err: domain.ErrUnsupportedContainer}
	case m.PackageVersion < SpecVersion:
		return &domain.ContainerStateError{Path: path, Err: domain.ErrOutdatedContainer}
	}
	return nil
}

// Make creates a new container directory from a manifest. The package
// version is always set to SpecVersion.
func Make(dir string, m Manifest, _ Options) (*Container, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, &domain.ContainerStateError{Path: dir, Err: domain.ErrContainerExists}
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	m.PackageVersion = SpecVersion

	if err := os.MkdirAll(filepath.Join(dir, ContentDir), 0o755); err != nil {
		return nil, fmt.Errorf("create container dir: %w", err)
	}
	if err := writeManifest(dir, &m); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	return &Container{path: dir, manifest: m}, nil
}

// Open extracts archive into dir and loads it. An already open directory is
// loaded as-is.
func Open(archive, dir string, opts Options) (*Container, error) {
	if _, err := os.Stat(archive); errors.Is(err, os.ErrNotExist) {
		return nil, &domain.ContainerStateError{Path: archive, Err: domain.ErrContainerMissing}
	}
	if _, err := os.Stat(dir); err == nil {
		return Load(dir, opts)
	}

	if err := extract(archive, dir); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("extract %s: %w", archive, err)
	}
	c, err := Load(dir, opts)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	return c, nil
}

// Close packs dir into an archive next to it, removes dir and returns the
// archive path.
func Close(dir string, opts Options) (string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", &domain.ContainerStateError{Path: dir, Err: domain.ErrContainerMissing}
	}
	if _, err := Load(dir, opts); err != nil {
		return "", err
	}

	archive := filepath.Clean(dir) + Ext
	tmp, err := os.CreateTemp(filepath.Dir(archive), ".close-*")
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := compress(tmp, dir, opts.Compression); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}
	if err := os.Rename(tmp.Name(), archive); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("remove container dir: %w", err)
	}
	return archive, nil
}

// ReadManifest reads the manifest embedded in an archive without extracting it.
func ReadManifest(archive string, _ Options) (*Manifest, error) {
	if _, err := os.Stat(archive); errors.Is(err, os.ErrNotExist) {
		return nil, &domain.ContainerStateError{Path: archive, Err: domain.ErrContainerMissing}
	}

	var data []byte
	err := walkArchive(archive, func(name string, hdr *tar.Header, r io.Reader) (bool, error) {
		if name != ManifestFile {
			return true, nil
		}
		var err error
		data, err = io.ReadAll(r)
		return false, err
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", archive, err)
	}
	if data == nil {
		return nil, &domain.ContainerStateError{Path: archive, Err: domain.ErrManifestMissing}
	}
	return decodeManifest(data)
}
