package container

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SpecVersion is the resource container package version this module reads and writes.
const SpecVersion = 7

const (
	ManifestFile = "manifest.yaml"
	ContentDir   = "content"
	Ext          = ".tsrc"
)

type Manifest struct {
	PackageVersion  int      `yaml:"package_version"`
	ModifiedAt      int64    `yaml:"modified_at"`
	ContentMimeType string   `yaml:"content_mime_type"`
	Language        Language `yaml:"language"`
	Project         Project  `yaml:"project"`
	Resource        Resource `yaml:"resource"`
}

type Language struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

type Project struct {
	Slug       string   `yaml:"slug"`
	Name       string   `yaml:"name"`
	Desc       string   `yaml:"desc,omitempty"`
	Icon       string   `yaml:"icon,omitempty"`
	Sort       int      `yaml:"sort"`
	Categories []string `yaml:"categories,omitempty"`
}

type Resource struct {
	Slug   string `yaml:"slug"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Status Status `yaml:"status"`
}

type Status struct {
	TranslateMode string `yaml:"translate_mode"`
	CheckingLevel string `yaml:"checking_level"`
	Comments      string `yaml:"comments,omitempty"`
	PubDate       string `yaml:"pub_date"`
	License       string `yaml:"license"`
	Version       string `yaml:"version"`
}

// Slug is the container name derived from the manifest: language_project_resource.
func (m *Manifest) Slug() string {
	return fmt.Sprintf("%s_%s_%s", m.Language.Slug, m.Project.Slug, m.Resource.Slug)
}

func (m *Manifest) validate() error {
	switch {
	case m.Language.Slug == "":
		return fmt.Errorf("manifest: missing language slug")
	case m.Project.Slug == "":
		return fmt.Errorf("manifest: missing project slug")
	case m.Resource.Slug == "":
		return fmt.Errorf("manifest: missing resource slug")
	}
	return nil
}

func decodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func writeManifest(dir string, m *Manifest) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ManifestFile), buf.Bytes(), 0o644)
}
