package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
)

func TestSearchServiceCenters(t *testing.T) {
	repo := &fakeServiceCenterRepo{centers: map[string]*entity.ServiceCenter{"c1": {ID: "c1"}}}
	uc := NewServiceCenterUsecase(testClient(), quietLogger(), repo)

	resp, err := uc.SearchServiceCenters(context.Background(), "  glow ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if resp.Total != 1 || repo.queries[0] != "glow" {
		t.Fatalf("unexpected search %+v, queries %v", resp, repo.queries)
	}

	resp, err = uc.SearchServiceCenters(context.Background(), "   ")
	if err != nil {
		t.Fatalf("blank search: %v", err)
	}
	if resp.Total != 1 || repo.queries[1] != "" {
		t.Fatalf("blank search should list all, queries %v", repo.queries)
	}
}

func TestGetServiceCenterByID(t *testing.T) {
	repo := &fakeServiceCenterRepo{centers: map[string]*entity.ServiceCenter{"c1": {ID: "c1", Title: "Glow"}}}
	uc := NewServiceCenterUsecase(testClient(), quietLogger(), repo)

	center, err := uc.GetServiceCenterByID(context.Background(), "c1")
	if err != nil || center.Title != "Glow" {
		t.Fatalf("get: %+v, %v", center, err)
	}

	if _, err := uc.GetServiceCenterByID(context.Background(), "nope"); !errors.Is(err, ErrServiceCenterNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestGetAllServiceCentersError(t *testing.T) {
	repo := &fakeServiceCenterRepo{listErr: &appwrite.Error{Code: http.StatusUnauthorized, Message: "missing scope"}}
	uc := NewServiceCenterUsecase(testClient(), quietLogger(), repo)

	_, err := uc.GetAllServiceCenters(context.Background())
	if !appwrite.IsUnauthorized(err) {
		t.Fatalf("expected wrapped platform error, got %v", err)
	}
}
