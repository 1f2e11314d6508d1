package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/editorbox/EditorBox_Go/internal/domain"
	"github.com/editorbox/EditorBox_Go/internal/entitlement"
	"github.com/editorbox/EditorBox_Go/internal/event"
	"github.com/editorbox/EditorBox_Go/internal/monetization"
	"github.com/editorbox/EditorBox_Go/internal/note"
	"github.com/editorbox/EditorBox_Go/internal/progression"
	"github.com/editorbox/EditorBox_Go/internal/subscription"
	"github.com/editorbox/EditorBox_Go/internal/throttle"
)

// testStack wires the full service graph over in-memory repositories.
type testStack struct {
	router       *chi.Mux
	policy       *monetization.Policy
	progression  progression.Service
	entitlement  entitlement.Service
	subscription subscription.Service
	note         note.Service
	progRepo     *progression.FakeProgressRepository
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	bus := event.NewMemoryBus()
	policy := monetization.NewPolicy(bus)
	progRepo := progression.NewFakeProgressRepository()
	prog := progression.NewService(progRepo, throttle.New(throttle.DefaultWindow, throttle.DefaultMaxEntries), policy, bus)
	ent := entitlement.NewService(entitlement.NewFakeEntitlementRepository(), prog, bus)
	sub := subscription.NewService(prog, ent, subscription.StaticVerifier{}, bus)
	noteSvc := note.NewService(note.NewFakeNoteRepository(), prog)

	r := chi.NewRouter()
	r.Post("/notes", HandleCreateNote(noteSvc))
	r.Get("/notes", HandleListNotes(noteSvc))
	r.Get("/notes/{noteID}", HandleGetNote(noteSvc))
	r.Put("/notes/{noteID}", HandleUpdateNote(noteSvc))
	r.Delete("/notes/{noteID}", HandleDeleteNote(noteSvc))
	r.Post("/notes/import", HandleImportText(noteSvc))
	r.Get("/progress", HandleGetProgress(prog))
	r.Get("/progress/daily-reward", HandleCheckDailyReward(prog))
	r.Post("/progress/daily-reward/claim", HandleClaimDailyReward(prog))
	r.Get("/prompts", HandleGetPrompts(policy))
	r.Post("/prompts/paywall/dismiss", HandleDismissPaywall(policy))
	r.Post("/prompts/daily-reward/dismiss", HandleDismissDailyReward(policy))
	r.Get("/themes", HandleListThemes(ent))
	r.Get("/themes/current", HandleCurrentTheme(ent))
	r.Post("/themes/{themeID}/purchase", HandlePurchaseTheme(ent))
	r.Post("/themes/{themeID}/equip", HandleEquipTheme(ent))
	r.Post("/subscription/event", HandleSubscriptionEvent(sub))

	return &testStack{
		router:       r,
		policy:       policy,
		progression:  prog,
		entitlement:  ent,
		subscription: sub,
		note:         noteSvc,
		progRepo:     progRepo,
	}
}

func (s *testStack) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func (s *testStack) seedCoins(t *testing.T, coins int) {
	t.Helper()

	record := domain.NewProgress()
	record.Coins = coins
	require.NoError(t, s.progRepo.SaveProgress(context.Background(), record))
}
