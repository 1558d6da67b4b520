package service_test

import (
	"context"
	"testing"
	"time"

	"settings_hub/internal/service"
)

func TestEventLogService_List_NormalizesFilter(t *testing.T) {
	repo := &mockEventRepo{}
	svc := service.NewEventLogService(repo)

	locTokyo, _ := time.LoadLocation("Asia/Tokyo")
	from := time.Date(2026, 2, 1, 9, 0, 0, 0, locTokyo)
	to := time.Date(2026, 2, 2, 9, 0, 0, 0, locTokyo)

	_, err := svc.List(context.Background(), service.LogFilter{
		From:   from,
		To:     to,
		Type:   " reconfigure ",
		Device: " plug-a ",
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if repo.lastFrom.Location() != time.UTC || repo.lastTo.Location() != time.UTC {
		t.Fatalf("times not normalized to UTC: %v %v", repo.lastFrom, repo.lastTo)
	}
	if repo.lastType != "RECONFIGURE" {
		t.Fatalf("type not normalized: %q", repo.lastType)
	}
	if repo.lastDev != "plug-a" {
		t.Fatalf("device not trimmed: %q", repo.lastDev)
	}
}

func TestEventLogService_List_RejectsInvertedRange(t *testing.T) {
	svc := service.NewEventLogService(&mockEventRepo{})

	_, err := svc.List(context.Background(), service.LogFilter{
		From: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	if err == nil {
		t.Fatal("List() expected error for inverted range")
	}
}

func TestEventLogService_List_ZeroBoundsPassThrough(t *testing.T) {
	repo := &mockEventRepo{}
	svc := service.NewEventLogService(repo)

	if _, err := svc.List(context.Background(), service.LogFilter{}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !repo.lastFrom.IsZero() || !repo.lastTo.IsZero() {
		t.Fatalf("zero bounds must stay zero: %v %v", repo.lastFrom, repo.lastTo)
	}
}
