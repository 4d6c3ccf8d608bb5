package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mbg_outreach/internal/adapter/persistence/memory"
	"mbg_outreach/internal/domain/entities"
	"mbg_outreach/internal/usecase/interfaces"
	mock_interfaces "mbg_outreach/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContactScanner_FindContact(t *testing.T) {
	ctx := context.Background()

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := NewContactScanner(memory.NewLeadRepository(), mock_interfaces.NewMockISearchEngine(ctrl), mock_interfaces.NewMockIPageFetcher(ctrl), nil, nil)

		if _, err := s.FindContact(ctx, "missing"); !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("found on second page of first query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := memory.NewLeadRepository()
		_, _ = leads.Create(ctx, entities.Lead{ID: "l1", Name: "Dapur X", City: "Bandung", Status: entities.LeadStatusNotContacted, CreatedAt: testNow})

		search := mock_interfaces.NewMockISearchEngine(ctrl)
		fetcher := mock_interfaces.NewMockIPageFetcher(ctrl)
		search.EXPECT().Search(gomock.Any(), `"Dapur X" Bandung kontak`).Return([]interfaces.SearchResult{
			{URL: "https://a.example"}, {URL: "https://b.example"},
		}, nil)
		fetcher.EXPECT().FetchText(gomock.Any(), "https://a.example").Return("tidak ada nomor di sini", nil)
		fetcher.EXPECT().FetchText(gomock.Any(), "https://b.example").Return("Hubungi kami: 0812-3456-7890 (Bu Ani)", nil)

		pauses := 0
		pacing := func() time.Duration { pauses++; return 0 }
		s := NewContactScanner(leads, search, fetcher, pacing, nil)

		res, err := s.FindContact(ctx, "l1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.Phone != "081234567890" || res.Source != "https://b.example" {
			t.Fatalf("unexpected result %+v", res)
		}
		if pauses != 1 {
			t.Fatalf("expected one politeness pause, got %d", pauses)
		}
		got, _ := leads.GetByID(ctx, "l1")
		if got.Phone != "081234567890" || got.Status != entities.LeadStatusNotContacted {
			t.Fatalf("unexpected lead after scan %+v", got)
		}
	})

	t.Run("search errors move to next query and exhaustion is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := memory.NewLeadRepository()
		_, _ = leads.Create(ctx, entities.Lead{ID: "l1", Name: "Dapur X", City: "Bandung", CreatedAt: testNow})

		search := mock_interfaces.NewMockISearchEngine(ctrl)
		fetcher := mock_interfaces.NewMockIPageFetcher(ctrl)
		search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errors.New("blocked"))
		search.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]interfaces.SearchResult{
			{URL: "1"}, {URL: "2"}, {URL: "3"}, {URL: "4"},
		}, nil)
		search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)
		fetcher.EXPECT().FetchText(gomock.Any(), gomock.Any()).Return("", errors.New("timeout")).Times(3)

		s := NewContactScanner(leads, search, fetcher, NoPacing(), nil)
		res, err := s.FindContact(ctx, "l1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.Message == "" {
			t.Fatalf("expected failure result, got %+v", res)
		}
	})
}

func TestExtractPhone(t *testing.T) {
	cases := map[string]string{
		"Telp: +62812-3456-7890": "+6281234567890",
		"kantor (021) 555":       "",
		"call 0221 2345 678 now": "02212345678",
		"nomor 0812345":          "",
		"tidak ada":              "",
	}
	for in, want := range cases {
		if got := ExtractPhone(in); got != want {
			t.Fatalf("ExtractPhone(%q) = %q, want %q", in, got, want)
		}
	}
}
