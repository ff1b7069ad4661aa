package service

import (
	"strings"

	"resource_catalog/internal/container"
)

func (s *Indexer) containerDir(language, project, resource string) string {
	return strings.TrimSuffix(s.ArchivePath(language, project, resource), container.Ext)
}

// OpenContainer expands a downloaded container next to its archive.
func (s *Indexer) OpenContainer(language, project, resource string) (*container.Container, error) {
	archive := s.ArchivePath(language, project, resource)
	c, err := container.Open(archive, s.containerDir(language, project, resource), s.config.Container)
	if err != nil {
		return nil, err
	}
	s.logger.Info("opened container", "path", c.Path(), "type", c.Type())
	return c, nil
}

// CloseContainer packs an open container back into its archive.
func (s *Indexer) CloseContainer(language, project, resource string) (string, error) {
	archive, err := container.Close(s.containerDir(language, project, resource), s.config.Container)
	if err != nil {
		return "", err
	}
	s.logger.Info("closed container", "path", archive)
	return archive, nil
}
