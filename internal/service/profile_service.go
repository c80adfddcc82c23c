package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobconnect/internal/domain"
	"jobconnect/internal/upload"
)

type ProfileInput struct {
	Phone      string
	Location   string
	Education  string
	Skills     string
	Experience string
}

// ProfileService maintains the employee's free-text profile and document
// library.
type ProfileService struct {
	profiles  domain.EmployeeProfileRepository
	documents domain.EmployeeDocumentRepository
	store     *upload.Store
}

func NewProfileService(profiles domain.EmployeeProfileRepository, documents domain.EmployeeDocumentRepository, store *upload.Store) *ProfileService {
	return &ProfileService{profiles: profiles, documents: documents, store: store}
}

func (s *ProfileService) Upsert(ctx context.Context, userID int64, in ProfileInput) (*domain.EmployeeProfile, error) {
	p := &domain.EmployeeProfile{
		UserID:     userID,
		Phone:      strings.TrimSpace(in.Phone),
		Location:   strings.TrimSpace(in.Location),
		Education:  strings.TrimSpace(in.Education),
		Skills:     strings.TrimSpace(in.Skills),
		Experience: strings.TrimSpace(in.Experience),
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.profiles.FindByUser(ctx, userID)
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.EmployeeProfile, error) {
	return s.profiles.FindByUser(ctx, userID)
}

// AddDocument records an already-saved upload as a typed document.
func (s *ProfileService) AddDocument(ctx context.Context, userID int64, fileType domain.DocumentType, fileName, filePath string) (*domain.EmployeeDocument, error) {
	if fileType == "" {
		fileType = domain.DocCV
	}
	if !domain.ValidDocumentType(fileType) {
		return nil, fmt.Errorf("%w: invalid document type", domain.ErrInvalidInput)
	}
	d := &domain.EmployeeDocument{
		UserID:   userID,
		FileType: fileType,
		FileName: fileName,
		FilePath: filePath,
	}
	if err := s.documents.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *ProfileService) ListDocuments(ctx context.Context, userID int64) ([]domain.EmployeeDocument, error) {
	return s.documents.ListByUser(ctx, userID)
}

// DeleteDocument removes an owned document row and its stored file. A
// leftover file after a failed unlink is tolerated; the row is authoritative.
func (s *ProfileService) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	d, err := s.documents.FindOwned(ctx, documentID, userID)
	if err != nil {
		return err
	}
	if err := s.documents.DeleteOwned(ctx, documentID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	_ = s.store.Remove(d.FilePath)
	return nil
}
