package cloudsync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakery-backend/internal/models"
)

func testData() models.AppData {
	return models.AppData{
		Ingredients: []models.Ingredient{{ID: "i1", Name: "קמח", Unit: models.UnitKg, PricePerUnit: 4}},
		Packagings:  models.DefaultPackagings(),
		Settings:    models.DefaultSettings(),
	}
}

func TestPushSendsWholeDocument(t *testing.T) {
	var gotMethod, gotKey string
	var gotBody models.AppData

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotKey = r.Header.Get("X-Master-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding pushed body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := New(server.URL, "secret", time.Minute, 5*time.Second,
		func() (models.AppData, error) { return testData(), nil },
		func(models.AppData) error { return nil })

	if err := s.Push(context.Background()); err != nil {
		t.Fatalf("push: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("method = %s, want PUT", gotMethod)
	}
	if gotKey != "secret" {
		t.Fatalf("X-Master-Key = %q", gotKey)
	}
	if len(gotBody.Ingredients) != 1 || gotBody.Ingredients[0].ID != "i1" {
		t.Fatalf("pushed document = %+v", gotBody)
	}
}

func TestPullReplacesLocalState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest" {
			t.Errorf("path = %s, want /latest", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"record": testData()})
	}))
	defer server.Close()

	var replaced *models.AppData
	s := New(server.URL, "secret", time.Minute, 5*time.Second,
		func() (models.AppData, error) { return models.AppData{}, nil },
		func(d models.AppData) error { replaced = &d; return nil })

	if err := s.Pull(context.Background()); err != nil {
		t.Fatalf("pull: %v", err)
	}
	if replaced == nil {
		t.Fatal("replace was not called")
	}
	if len(replaced.Ingredients) != 1 || replaced.Ingredients[0].Name != "קמח" {
		t.Fatalf("replaced document = %+v", replaced)
	}
}

func TestPullBackfillsDefaultsForPartialDocument(t *testing.T) {
	// A bin written by another client may carry only some collections.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"record": {"orders": []}}`))
	}))
	defer server.Close()

	var replaced *models.AppData
	s := New(server.URL, "secret", time.Minute, 5*time.Second,
		func() (models.AppData, error) { return models.AppData{}, nil },
		func(d models.AppData) error { replaced = &d; return nil })

	if err := s.Pull(context.Background()); err != nil {
		t.Fatalf("pull: %v", err)
	}
	if replaced == nil {
		t.Fatal("replace was not called")
	}
	if replaced.Settings.LaborCostPerHour != 50 {
		t.Fatalf("LaborCostPerHour = %v, want back-filled 50", replaced.Settings.LaborCostPerHour)
	}
	if len(replaced.Packagings) != 3 {
		t.Fatalf("packagings len = %d, want default catalog of 3", len(replaced.Packagings))
	}
	if replaced.Ingredients == nil || len(replaced.Ingredients) != 0 {
		t.Fatalf("ingredients = %v, want empty slice", replaced.Ingredients)
	}
}

func TestPullSurfacesRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	called := false
	s := New(server.URL, "secret", time.Minute, 5*time.Second,
		func() (models.AppData, error) { return models.AppData{}, nil },
		func(models.AppData) error { called = true; return nil })

	if err := s.Pull(context.Background()); err == nil {
		t.Fatal("expected error on remote failure")
	}
	if called {
		t.Fatal("replace must not run when the remote store fails")
	}
}

func TestPullSuppressionAfterLocalWrite(t *testing.T) {
	s := New("http://unused", "", 30*time.Second, 5*time.Second, nil, nil)

	now := time.Now()
	if !s.shouldPull(now) {
		t.Fatal("fresh syncer should allow pulls")
	}

	s.NotifyChange()
	if s.shouldPull(time.Now()) {
		t.Fatal("pull must be suppressed right after a local write")
	}
	if s.shouldPull(time.Now().Add(2 * time.Second)) {
		t.Fatal("pull still suppressed inside the window")
	}
	if !s.shouldPull(time.Now().Add(6 * time.Second)) {
		t.Fatal("pull should resume once the window has passed")
	}
}

func TestNotifyChangeCoalesces(t *testing.T) {
	s := New("http://unused", "", 30*time.Second, 5*time.Second, nil, nil)

	// A burst of writes must not block: the change queue has depth one.
	for i := 0; i < 10; i++ {
		s.NotifyChange()
	}
	select {
	case <-s.changes:
	default:
		t.Fatal("expected a queued push")
	}
	select {
	case <-s.changes:
		t.Fatal("expected the burst to coalesce into one queued push")
	default:
	}
}
