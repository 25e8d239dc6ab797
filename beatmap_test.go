package rosu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestBeatmapLookupQuery(t *testing.T) {
	var gotPath, gotQuery string

	srv, _ := newFakeServer(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"id":131891,"beatmapset_id":39804}`)
	})
	client := newTestClient(t, srv)

	m, err := client.Beatmap().MapID(131891).Do(context.Background())
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotPath != "/api/beatmaps/lookup" {
		t.Errorf("Expected lookup path, got %q", gotPath)
	}
	if !strings.Contains(gotQuery, "id=131891") {
		t.Errorf("Expected id in query, got %q", gotQuery)
	}
	if m.MapID != 131891 || m.MapsetID != 39804 {
		t.Errorf("Unexpected map %+v", m)
	}
}

func TestBeatmapLookupByChecksum(t *testing.T) {
	var gotQuery string

	srv, _ := newFakeServer(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"id":131891}`)
	})
	client := newTestClient(t, srv)

	_, err := client.Beatmap().Checksum("a84050da9b68ca1bd8e2d1700b9c6ca5").Do(context.Background())
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if !strings.Contains(gotQuery, "checksum=a84050da9b68ca1bd8e2d1700b9c6ca5") {
		t.Errorf("Expected checksum in query, got %q", gotQuery)
	}
}

func TestBeatmapsBulkQuery(t *testing.T) {
	var gotQuery string

	srv, _ := newFakeServer(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"beatmaps":[{"id":1},{"id":2},{"id":3}]}`)
	})
	client := newTestClient(t, srv)

	maps, err := client.Beatmaps(1, 2, 3).Do(context.Background())
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if len(maps) != 3 {
		t.Errorf("Expected 3 maps, got %d", len(maps))
	}
	for _, want := range []string{"ids%5B%5D=1", "ids%5B%5D=2", "ids%5B%5D=3"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("Expected %q in query %q", want, gotQuery)
		}
	}
}

func TestBeatmapScoresPath(t *testing.T) {
	var gotPath string

	srv, _ := newFakeServer(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"scores":[]}`)
	})
	client := newTestClient(t, srv)

	_, err := client.BeatmapScores(131891).Mode(ModeOsu).Do(context.Background())
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotPath != "/api/beatmaps/131891/scores" {
		t.Errorf("Expected scores path, got %q", gotPath)
	}
}

func TestBeatmapUserScoresEnvelope(t *testing.T) {
	var gotPath string

	srv, _ := newFakeServer(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"scores":[{"id":1},{"id":2}]}`)
	})
	client := newTestClient(t, srv)

	scores, err := client.BeatmapUserScores(131891, UserID{ID: 2211396}).Do(context.Background())
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotPath != "/api/beatmaps/131891/scores/users/2211396/all" {
		t.Errorf("Expected per-mod scores path, got %q", gotPath)
	}
	if len(scores) != 2 {
		t.Errorf("Expected 2 scores, got %d", len(scores))
	}
}

func TestDifficultyAttributesPost(t *testing.T) {
	var gotMethod string
	var gotBody difficultyAttributesRequest

	srv, _ := newFakeServer(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Decoding attributes request: %v", err)
		}
		fmt.Fprint(w, `{"attributes":{"star_rating":7.2,"max_combo":2385}}`)
	})
	client := newTestClient(t, srv)

	attrs, err := client.BeatmapDifficultyAttributes(131891).
		Mods(72).
		Mode(ModeOsu).
		Do(context.Background())
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %q", gotMethod)
	}
	if gotBody.Mods == nil || *gotBody.Mods != 72 {
		t.Errorf("Expected mods 72 in body, got %+v", gotBody.Mods)
	}
	if gotBody.RulesetID == nil || *gotBody.RulesetID != 0 {
		t.Errorf("Expected ruleset 0 in body, got %+v", gotBody.RulesetID)
	}
	if attrs.StarRating != 7.2 || attrs.MaxCombo != 2385 {
		t.Errorf("Unexpected attributes %+v", attrs)
	}
}

func TestBeatmapsetSearchQuery(t *testing.T) {
	var gotPath, gotQuery string

	srv, _ := newFakeServer(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"beatmapsets":[],"total":0}`)
	})
	client := newTestClient(t, srv)

	_, err := client.BeatmapsetSearch().Query("creator=sotarks ar<9").Page(2).Do(context.Background())
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotPath != "/api/beatmapsets/search" {
		t.Errorf("Expected search path, got %q", gotPath)
	}
	if !strings.Contains(gotQuery, "q=creator%3Dsotarks+ar%3C9") {
		t.Errorf("Expected encoded query, got %q", gotQuery)
	}
	if !strings.Contains(gotQuery, "page=2") {
		t.Errorf("Expected page in query, got %q", gotQuery)
	}
}

func TestBeatmapsetFromMapID(t *testing.T) {
	var gotPath, gotQuery string

	srv, _ := newFakeServer(t, 3600, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"id":39804}`)
	})
	client := newTestClient(t, srv)

	set, err := client.BeatmapsetFromMapID(131891).Do(context.Background())
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotPath != "/api/beatmapsets/lookup" {
		t.Errorf("Expected lookup path, got %q", gotPath)
	}
	if !strings.Contains(gotQuery, "beatmap_id=131891") {
		t.Errorf("Expected beatmap_id in query, got %q", gotQuery)
	}
	if set.MapsetID != 39804 {
		t.Errorf("Expected mapset 39804, got %d", set.MapsetID)
	}
}
