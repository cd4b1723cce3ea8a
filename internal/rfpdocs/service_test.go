package rfpdocs

import (
	"context"
	"errors"
	"strings"
	"testing"

	localstore "rfp-backend/internal/shared/storage/object/local"
)

func testDocService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Store: localstore.New(t.TempDir()),
		Repo:  NewMemoryRepo(),
	}
}

func TestUploadAndExtractText(t *testing.T) {
	svc := testDocService(t)
	ctx := context.Background()

	content := "We require cloud storage compliance certification."
	doc, err := svc.Upload(ctx, "user-1", "rfp.txt", strings.NewReader(content))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.ID == "" || doc.StorageKey == "" {
		t.Fatalf("expected populated document, got %+v", doc)
	}
	if doc.SizeBytes != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), doc.SizeBytes)
	}

	text, err := svc.ExtractText(ctx, "user-1", doc.ID)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != content {
		t.Fatalf("expected round-tripped text, got %q", text)
	}
}

func TestUploadRequiresFileName(t *testing.T) {
	svc := testDocService(t)

	_, err := svc.Upload(context.Background(), "user-1", "", strings.NewReader("content"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCurrentReturnsLatestUpload(t *testing.T) {
	svc := testDocService(t)
	ctx := context.Background()

	if _, err := svc.Upload(ctx, "user-1", "first.txt", strings.NewReader("one")); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	second, err := svc.Upload(ctx, "user-1", "second.txt", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	current, err := svc.Current(ctx, "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.ID != second.ID {
		t.Fatalf("expected latest document %s, got %s", second.ID, current.ID)
	}
}

func TestCurrentEmptyIsNotFound(t *testing.T) {
	svc := testDocService(t)

	if _, err := svc.Current(context.Background(), "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExtractTextForeignDocument(t *testing.T) {
	svc := testDocService(t)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "user-1", "rfp.txt", strings.NewReader("cloud storage"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if _, err := svc.ExtractText(ctx, "user-2", doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign document, got %v", err)
	}
}
