package controllers

import (
	"strings"
	"testing"
)

func TestGenerateFileKeyLayout(t *testing.T) {
	uc := &UploadController{}

	key := uc.generateFileKey("user-1", "beach.JPG", "activity")
	parts := strings.Split(key, "/")
	if len(parts) != 4 {
		t.Fatalf("expected uploads/{photoType}/{userID}/{file}, got %q", key)
	}
	if parts[0] != "uploads" || parts[1] != "activity" || parts[2] != "user-1" {
		t.Fatalf("unexpected key prefix: %q", key)
	}
	if !strings.HasSuffix(key, ".JPG") {
		t.Fatalf("extension must be preserved, got %q", key)
	}
}

func TestVerifyFileOwnership(t *testing.T) {
	uc := &UploadController{}

	key := uc.generateFileKey("user-1", "pic.png", "profile")
	if !uc.verifyFileOwnership(key, "user-1") {
		t.Fatalf("owner must pass ownership check for %q", key)
	}
	if uc.verifyFileOwnership(key, "user-2") {
		t.Fatalf("non-owner must fail ownership check for %q", key)
	}
	if uc.verifyFileOwnership("garbage", "user-1") {
		t.Fatal("malformed key must fail ownership check")
	}
}

func TestUploadValidation(t *testing.T) {
	uc := &UploadController{}

	for _, contentType := range []string{"image/jpeg", "image/png", "image/webp", "image/heic"} {
		if !uc.isValidImageType(contentType) {
			t.Fatalf("%s should be accepted", contentType)
		}
	}
	for _, contentType := range []string{"application/pdf", "video/mp4", "text/html", ""} {
		if uc.isValidImageType(contentType) {
			t.Fatalf("%s should be rejected", contentType)
		}
	}

	if !uc.isValidFileSize(10 * 1024 * 1024) {
		t.Fatal("10MB should be accepted")
	}
	if uc.isValidFileSize(10*1024*1024 + 1) {
		t.Fatal("over 10MB should be rejected")
	}
}
