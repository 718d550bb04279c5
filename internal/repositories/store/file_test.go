package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	repositoryContractSuite
	path string
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "nested", "dados.json")

	repo, err := NewFile(&FileConfig{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestSaveLeavesNoTempFiles() {
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Store: sampleStore()}))
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Store: sampleStore()}))

	entries, err := os.ReadDir(filepath.Dir(s.path))
	s.Require().NoError(err)
	s.Len(entries, 1)
	s.Equal("dados.json", entries[0].Name())
}

func (s *FileRepositoryTestSuite) TestCorruptDocument() {
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.path), 0o755))
	s.Require().NoError(os.WriteFile(s.path, []byte(`{"panels": 7}`), 0o644))

	_, err := s.repo.Load(s.ctx)
	s.ErrorIs(err, ErrCorruptStore)
}

func (s *FileRepositoryTestSuite) TestHandEditedDocumentWithDuplicates() {
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.path), 0o755))
	doc := `{"panels": {"chan-1": {"activityCategory": "stumble", "unitPrice": 1.50, "roundNumber": 1,
		"queues": {"rush_hour": {"label": "Rush Hour", "capacity": 8, "participants": ["111", "222", "111"]}}}}}`
	s.Require().NoError(os.WriteFile(s.path, []byte(doc), 0o644))

	_, err := s.repo.Load(s.ctx)
	s.ErrorIs(err, ErrCorruptStore)
}

func (s *FileRepositoryTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.repo.Load(ctx)
	s.ErrorIs(err, context.Canceled)
	s.ErrorIs(s.repo.Save(ctx, &SaveInput{Store: sampleStore()}), context.Canceled)
}

func (s *FileRepositoryTestSuite) TestDefaultPath() {
	repo, err := NewFile(&FileConfig{})
	s.Require().NoError(err)
	s.Equal(DefaultFilePath, repo.path)

	_, err = NewFile(nil)
	s.Error(err)
}
