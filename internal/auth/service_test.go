package auth

import (
	"context"
	"errors"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryOwnerRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register(context.Background(), "Shop Owner", "owner@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	owner := repo.owners["owner@example.com"]
	if owner == nil {
		t.Fatalf("owner not found")
	}

	if owner.Password == password {
		t.Fatalf("password was stored in plain text")
	}
	if owner.Role != RoleOwner {
		t.Fatalf("role: %q", owner.Role)
	}
}

func TestRegistrationClosesAfterFirstOwner(t *testing.T) {
	repo := NewInMemoryOwnerRepository()
	service := NewService(repo)

	if _, err := service.Register(context.Background(), "First", "first@example.com", "pw123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Register(context.Background(), "Second", "second@example.com", "pw123456")
	if !errors.Is(err, ErrSignupClosed) {
		t.Fatalf("expected ErrSignupClosed, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := NewInMemoryOwnerRepository()
	service := NewService(repo)

	_, err := service.Register(context.Background(), "Shop Owner", "owner@example.com", "Password@123")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := service.Login(context.Background(), "owner@example.com", "Password@123"); err != nil {
		t.Fatalf("valid login failed: %v", err)
	}

	if _, err := service.Login(context.Background(), "owner@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := service.Login(context.Background(), "nobody@example.com", "Password@123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
